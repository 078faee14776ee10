package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/sakurako/internal/chat"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestMiddlewareLogsAndCallsNext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "debug", false)

	var got []chat.Event
	h := chat.Chain(func(_ context.Context, _ chat.Transport, ev chat.Event) {
		got = append(got, ev)
	}, Middleware(log))

	ev := chat.MessageEvent{Channel: "C1", User: "U1", Text: "hi"}
	h(context.Background(), nil, ev)

	require.Len(t, got, 1)
	assert.Equal(t, ev, got[0])

	out := buf.String()
	assert.Contains(t, out, "Received event")
	assert.Contains(t, out, "Finished processing event")
	assert.Contains(t, out, "event_kind=message")
	assert.Contains(t, out, "channel=C1")
	assert.Contains(t, out, "event_id=")
}

func TestMiddlewareRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "info", true)

	calls := 0
	h := Middleware(log)(func(context.Context, chat.Transport, chat.Event) { calls++ })
	h(context.Background(), nil, chat.PingEvent{})

	assert.Equal(t, 1, calls)
	assert.Empty(t, buf.String())
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	assert.Equal(t, "...", truncateString("abcdef", 2))
}
