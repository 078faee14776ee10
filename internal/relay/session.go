// Package relay holds the per-connection session: the roster cache, the bot's
// identity, and the reply pipeline that forwards chat messages to the
// dialogue service.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/edgard/sakurako/internal/chat"
	"github.com/edgard/sakurako/internal/dialogue"
)

// ErrNameNotFound is returned by BuildReply when the sender cannot be
// resolved or resolves to the bot itself.
var ErrNameNotFound = errors.New("name not found")

// Session owns all per-connection state. It is driven by a single event
// loop and is not safe for concurrent use.
type Session struct {
	client dialogue.Client
	log    *slog.Logger

	name  string
	team  string
	users map[string]string
}

// NewSession creates a session with no identity and an empty roster.
func NewSession(client dialogue.Client, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		client: client,
		log:    logger.With("component", "relay"),
		users:  make(map[string]string),
	}
}

// Name returns the bot's display name captured on connect.
func (s *Session) Name() string { return s.name }

// Team returns the team name captured on connect.
func (s *Session) Team() string { return s.team }

// ResolveName looks up a user's display name in the current roster.
func (s *Session) ResolveName(id string) (string, bool) {
	name, ok := s.users[id]
	return name, ok
}

// RefreshUsers replaces the roster with the transport's current user list.
// On error the previous roster is kept.
func (s *Session) RefreshUsers(ctx context.Context, t chat.Transport) error {
	users, err := t.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh users: %w", err)
	}

	roster := make(map[string]string, len(users))
	for _, u := range users {
		roster[u.ID] = u.Name
	}
	s.users = roster

	s.log.DebugContext(ctx, "Roster refreshed", "user_count", len(roster))
	return nil
}

// BuildReply asks the dialogue service for an answer to text sent by
// senderID. It fails with ErrNameNotFound, without calling the service, when
// the sender is unknown or carries the bot's own name.
func (s *Session) BuildReply(ctx context.Context, text, senderID string) (*dialogue.Response, error) {
	name, ok := s.ResolveName(senderID)
	if !ok || name == s.name {
		return nil, fmt.Errorf("%w: %s", ErrNameNotFound, senderID)
	}
	s.log.DebugContext(ctx, "Resolved sender", "user", senderID, "user_name", name)

	req := dialogue.NewRequest(text)
	req.Nickname = name

	res, err := s.client.Request(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("dialogue request failed: %w", err)
	}
	return res, nil
}
