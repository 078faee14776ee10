// Package slack adapts the slack-go RTM client to the chat package: it runs
// the connection, translates RTM events and exposes the outbound surface.
package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/slack-go/slack"

	"github.com/edgard/sakurako/internal/chat"
)

var (
	// ErrInvalidAuth is returned by Run when Slack rejects the token.
	ErrInvalidAuth = errors.New("slack rejected the bot token")

	// ErrConnectionClosed is returned by Run when the connection ends.
	ErrConnectionClosed = errors.New("slack connection closed")
)

// injectBuffer bounds events waiting to be delivered from outside the RTM stream.
const injectBuffer = 16

// Client is a single RTM session. Run must be called at most once.
type Client struct {
	api    *slack.Client
	rtm    *slack.RTM
	log    *slog.Logger
	inject chan chat.Event

	mu   sync.RWMutex
	info *slack.Info
}

// NewClient creates a Slack client bound to token.
func NewClient(token string, debug bool, logger *slog.Logger) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("slack bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "slack_client")

	api := slack.New(token,
		slack.OptionDebug(debug),
		slack.OptionLog(slog.NewLogLogger(log.Handler(), slog.LevelDebug)),
	)

	log.Info("Slack client created")
	return &Client{
		api:    api,
		rtm:    api.NewRTM(),
		log:    log,
		inject: make(chan chat.Event, injectBuffer),
	}, nil
}

// Users returns the full workspace roster.
func (c *Client) Users(ctx context.Context) ([]chat.User, error) {
	users, err := c.api.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slack users: %w", err)
	}

	out := make([]chat.User, 0, len(users))
	for _, u := range users {
		out = append(out, chat.User{ID: u.ID, Name: u.Name})
	}
	return out, nil
}

// SendMessage posts text to channelID.
func (c *Client) SendMessage(ctx context.Context, channelID, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", channelID, err)
	}
	return nil
}

// BotName returns the bot user's name from the connect payload.
func (c *Client) BotName() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.info == nil || c.info.User == nil {
		return "", false
	}
	return c.info.User.Name, true
}

// Team returns the connected team from the connect payload.
func (c *Client) Team() (chat.Team, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.info == nil || c.info.Team == nil {
		return chat.Team{}, false
	}
	return chat.Team{ID: c.info.Team.ID, Name: c.info.Team.Name, Domain: c.info.Team.Domain}, true
}

// Enqueue schedules ev for delivery on the Run loop. It never blocks: when
// the queue is full the event is dropped and false is returned.
func (c *Client) Enqueue(ev chat.Event) bool {
	select {
	case c.inject <- ev:
		return true
	default:
		c.log.Warn("Injected event queue full, dropping event", "event_kind", ev.Kind())
		return false
	}
}

// Run connects and delivers events to handler one at a time until the
// connection ends or ctx is cancelled. It does not reconnect: the first
// disconnect, authentication failure or connection error ends the loop.
func (c *Client) Run(ctx context.Context, handler chat.HandlerFunc) error {
	go c.rtm.ManageConnection()
	defer c.disconnect()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("Context cancelled, stopping slack event loop")
			return ctx.Err()

		case ev := <-c.inject:
			handler(ctx, c, ev)

		case msg, ok := <-c.rtm.IncomingEvents:
			if !ok {
				return ErrConnectionClosed
			}
			ev, stop := c.observe(msg)
			if ev != nil {
				handler(ctx, c, ev)
			}
			if stop != nil {
				return stop
			}
		}
	}
}

// disconnect asks the managed connection to stop without waiting for it;
// the connection goroutine may be blocked on an event nobody reads anymore.
func (c *Client) disconnect() {
	go func() {
		if err := c.rtm.Disconnect(); err != nil {
			c.log.Debug("RTM disconnect returned error", "error", err)
		}
	}()
}

// observe records connection state carried by msg, translates it, and
// reports a non-nil error when the event terminates the loop.
func (c *Client) observe(msg slack.RTMEvent) (chat.Event, error) {
	switch data := msg.Data.(type) {
	case *slack.ConnectedEvent:
		c.mu.Lock()
		c.info = data.Info
		c.mu.Unlock()
	case *slack.InvalidAuthEvent:
		return nil, ErrInvalidAuth
	case *slack.ConnectionErrorEvent:
		return nil, fmt.Errorf("%w: connection attempt %d failed: %w", ErrConnectionClosed, data.Attempt, data.ErrorObj)
	case *slack.DisconnectedEvent:
		ev := translate(msg)
		if data.Cause != nil {
			return ev, fmt.Errorf("%w: %w", ErrConnectionClosed, data.Cause)
		}
		return ev, ErrConnectionClosed
	}
	return translate(msg), nil
}
