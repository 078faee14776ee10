package relay

import (
	"context"

	"github.com/edgard/sakurako/internal/chat"
)

// HandleEvent routes one event. It satisfies chat.HandlerFunc and is meant to
// be called only from the transport's event loop.
func (s *Session) HandleEvent(ctx context.Context, t chat.Transport, ev chat.Event) {
	switch e := ev.(type) {
	case chat.ConnectEvent:
		s.onConnect(ctx, t)
	case chat.MessageEvent:
		s.onMessage(ctx, t, e)
	case chat.UserChangeEvent, chat.TeamJoinEvent:
		s.refresh(ctx, t, ev.Kind())
	case chat.PingEvent:
		s.log.DebugContext(ctx, "Ping", "latency", e.Latency)
	case chat.CloseEvent:
		s.log.InfoContext(ctx, "Connection closed", "intentional", e.Intentional, "cause", e.Cause)
	case chat.OtherEvent:
		// nothing to do
	default:
		s.log.WarnContext(ctx, "Unhandled event type", "event_kind", ev.Kind())
	}
}

func (s *Session) onConnect(ctx context.Context, t chat.Transport) {
	s.name, _ = t.BotName()
	s.team = ""
	if team, ok := t.Team(); ok {
		s.team = team.Name
	}
	s.log.InfoContext(ctx, "Connected", "bot_name", s.name, "team", s.team)

	s.refresh(ctx, t, "connect")
}

func (s *Session) onMessage(ctx context.Context, t chat.Transport, msg chat.MessageEvent) {
	if msg.Channel == "" || msg.User == "" || msg.Text == "" {
		s.log.DebugContext(ctx, "Ignoring incomplete message", "channel", msg.Channel, "user", msg.User)
		return
	}

	res, err := s.BuildReply(ctx, msg.Text, msg.User)
	if err != nil {
		s.log.InfoContext(ctx, "Dropping message", "channel", msg.Channel, "user", msg.User, "error", err)
		return
	}
	s.log.DebugContext(ctx, "Dialogue response", "utt", res.Utt, "mode", res.Mode, "da", res.DA)

	if err := t.SendMessage(ctx, msg.Channel, res.Utt); err != nil {
		s.log.ErrorContext(ctx, "Failed to send reply", "channel", msg.Channel, "error", err)
		return
	}
	s.log.InfoContext(ctx, "Sent reply", "channel", msg.Channel, "user", msg.User)
}

func (s *Session) refresh(ctx context.Context, t chat.Transport, reason string) {
	if err := s.RefreshUsers(ctx, t); err != nil {
		s.log.ErrorContext(ctx, "Roster refresh failed", "reason", reason, "error", err)
	}
}
