package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

const maxResponseSize = 1 << 20

// Chat is a docomo chat-dialogue session bound to one API key and persona.
// It carries the conversation context returned by the service into the next
// request. A Chat is not safe for concurrent use.
type Chat struct {
	apiKey     string
	persona    Persona
	endpoint   string
	httpClient *http.Client
	log        *slog.Logger

	context string
	mode    string
}

// ChatOption customizes a Chat.
type ChatOption func(*Chat)

// WithEndpoint overrides the service URL.
func WithEndpoint(endpoint string) ChatOption {
	return func(c *Chat) { c.endpoint = endpoint }
}

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ChatOption {
	return func(c *Chat) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) ChatOption {
	return func(c *Chat) { c.log = log }
}

// NewChat creates a chat object for the given API key and persona.
func NewChat(apiKey string, persona Persona, opts ...ChatOption) *Chat {
	c := &Chat{
		apiKey:     apiKey,
		persona:    persona,
		endpoint:   "https://api.apigw.smt.docomo.ne.jp/dialogue/v1/dialogue",
		httpClient: http.DefaultClient,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "docomo_chat")
	return c
}

// Persona reports the character this chat talks as.
func (c *Chat) Persona() Persona { return c.persona }

type docomoRequest struct {
	Utt      string `json:"utt"`
	Context  string `json:"context,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Type     string `json:"t,omitempty"`
}

// Request sends req and returns the service's reply. The returned context
// and mode are remembered for the following request.
func (c *Chat) Request(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("dialogue request cannot be nil")
	}

	body, err := json.Marshal(docomoRequest{
		Utt:      req.Utt,
		Context:  c.context,
		Nickname: req.Nickname,
		Mode:     c.mode,
		Type:     c.persona.characterType(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode dialogue request: %w", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid dialogue endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("APIKEY", c.apiKey)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogue request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")

	c.log.DebugContext(ctx, "Sending dialogue request", "nickname", req.Nickname, "has_context", c.context != "")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("dialogue request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from dialogue service: %s", resp.StatusCode, truncate(data, 256))
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid dialogue response: %w", err)
	}
	if out.Utt == "" {
		return nil, ErrEmptyResponse
	}

	c.context = out.Context
	c.mode = out.Mode

	c.log.DebugContext(ctx, "Received dialogue response", "mode", out.Mode, "da", out.DA)
	return &out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
