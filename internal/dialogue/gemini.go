package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// maxGeminiHistory bounds the turns replayed to the model on each request.
const maxGeminiHistory = 20

// GeminiConfig configures a GeminiChat.
type GeminiConfig struct {
	APIKey            string
	Model             string
	Temperature       float32
	SystemInstruction string
	Persona           Persona
}

// generator is the part of the genai SDK GeminiChat depends on.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiChat answers through Google's Gemini API. It keeps a bounded
// history of the conversation as its session state. Not safe for concurrent use.
type GeminiChat struct {
	models        generator
	model         string
	contentConfig *genai.GenerateContentConfig
	persona       Persona
	history       []*genai.Content
	log           *slog.Logger
}

// NewGeminiChat creates a Gemini-backed dialogue client.
func NewGeminiChat(ctx context.Context, cfg GeminiConfig, log *slog.Logger) (*GeminiChat, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newGeminiChat(gi.Models, cfg, log), nil
}

func newGeminiChat(models generator, cfg GeminiConfig, log *slog.Logger) *GeminiChat {
	if log == nil {
		log = slog.Default()
	}

	temperature := cfg.Temperature
	baseCfg := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if cfg.SystemInstruction != "" {
		baseCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: cfg.SystemInstruction}}}
	}

	logger := log.With("component", "gemini_chat")
	logger.Info("Gemini dialogue client initialized", "model", cfg.Model, "persona", cfg.Persona)

	return &GeminiChat{
		models:        models,
		model:         cfg.Model,
		contentConfig: baseCfg,
		persona:       cfg.Persona,
		log:           logger,
	}
}

// Request sends the user's text, prefixed with the nickname hint, and
// returns the model's reply.
func (c *GeminiChat) Request(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("dialogue request cannot be nil")
	}

	userContent := genai.NewContentFromText(formatUtterance(req), genai.RoleUser)
	contents := append(append([]*genai.Content{}, c.history...), userContent)

	copyCfg := *c.contentConfig
	resp, err := c.models.GenerateContent(ctx, c.model, contents, &copyCfg)
	if err != nil {
		c.log.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return nil, fmt.Errorf("gemini request blocked: %v", resp.PromptFeedback.BlockReason)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ErrEmptyResponse
	}

	c.history = append(c.history, userContent, genai.NewContentFromText(text, genai.RoleModel))
	if len(c.history) > maxGeminiHistory {
		c.history = c.history[len(c.history)-maxGeminiHistory:]
	}

	return &Response{Utt: text, Mode: "dialog"}, nil
}

func formatUtterance(req *Request) string {
	if req.Nickname == "" {
		return req.Utt
	}
	return req.Nickname + ": " + req.Utt
}
