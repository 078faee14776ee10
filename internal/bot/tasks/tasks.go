// Package tasks implements the bot's scheduled tasks.
package tasks

import (
	"context"
	"log/slog"

	"github.com/edgard/sakurako/internal/chat"
)

// ScheduledTaskFunc is the signature of every scheduled task.
type ScheduledTaskFunc func(ctx context.Context) error

// EventQueue delivers events onto the chat event loop.
type EventQueue interface {
	Enqueue(ev chat.Event) bool
}

// TaskDeps contains the dependencies available to scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Events EventQueue
}

// RegisterAllTasks returns every task keyed by the name used in the
// scheduler configuration.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := map[string]ScheduledTaskFunc{
		RosterRefreshTask: newRosterRefreshTask(deps),
	}
	deps.Logger.Debug("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
