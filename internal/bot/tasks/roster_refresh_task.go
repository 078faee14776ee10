package tasks

import (
	"context"
	"errors"

	"github.com/edgard/sakurako/internal/chat"
)

// RosterRefreshTask is the registry name of the periodic roster refresh.
const RosterRefreshTask = "roster_refresh"

// newRosterRefreshTask enqueues a roster-change event. The refresh itself
// runs on the event loop, so the session is never touched from the
// scheduler's goroutine.
func newRosterRefreshTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", RosterRefreshTask)

	return func(ctx context.Context) error {
		if !deps.Events.Enqueue(chat.UserChangeEvent{Origin: RosterRefreshTask}) {
			return errors.New("event queue full, roster refresh skipped")
		}
		log.DebugContext(ctx, "Roster refresh enqueued")
		return nil
	}
}
