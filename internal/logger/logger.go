// Package logger provides structured logging for the bot.
// It uses Go's slog package with configurable levels and formats, writing to stdout.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/edgard/sakurako/internal/chat"
)

// NewLogger creates a new slog Logger writing to stdout with the specified level and format.
// If jsonOutput is true, logs will be formatted as JSON, otherwise as text.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	return newLogger(os.Stdout, levelStr, jsonOutput)
}

func newLogger(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Middleware creates a logging middleware for the event dispatcher.
// Every received event is logged with a generated event id before and after handling.
func Middleware(log *slog.Logger) chat.Middleware {
	return func(next chat.HandlerFunc) chat.HandlerFunc {
		return func(ctx context.Context, t chat.Transport, ev chat.Event) {
			startTime := time.Now()

			logEntry := log.With(
				"event_id", uuid.NewString(),
				"event_kind", ev.Kind(),
			)

			switch e := ev.(type) {
			case chat.MessageEvent:
				logEntry = logEntry.With(
					"channel", e.Channel,
					"user", e.User,
					"text_preview", truncateString(e.Text, 50),
				)
			case chat.UserChangeEvent:
				logEntry = logEntry.With("user", e.UserID, "origin", e.Origin)
			case chat.TeamJoinEvent:
				logEntry = logEntry.With("user", e.UserID)
			case chat.CloseEvent:
				logEntry = logEntry.With("intentional", e.Intentional, "cause", e.Cause)
			}

			logEntry.DebugContext(ctx, "Received event")

			next(ctx, t, ev)

			logEntry.DebugContext(ctx, "Finished processing event", "duration", time.Since(startTime))
		}
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
