package mission

import "time"

// EventKind identifies the lifecycle transition an event records.
// Values are stored in the ledger verbatim.
type EventKind string

const (
	EventStarted   EventKind = "started"
	EventCompleted EventKind = "completed"
)

// TransitionResult is a value object capturing the status and timestamps
// a lifecycle transition applies. The caller persists it; nothing here
// touches the store.
type TransitionResult struct {
	NewStatus   Status
	EventKind   EventKind
	StartedAt   *time.Time // set on first promotion to an active status
	CompletedAt *time.Time // set when transitioning to Completed
}

// ApplyStart computes the start transition: promotion to In Progress.
// hasStartedAt reports whether the mission already carries a start
// timestamp; re-affirming a start never overwrites the original one.
// The caller passes the current time to enable testing.
func ApplyStart(hasStartedAt bool, now time.Time) TransitionResult {
	result := TransitionResult{
		NewStatus: StatusInProgress,
		EventKind: EventStarted,
	}
	if !hasStartedAt {
		result.StartedAt = &now
	}
	return result
}

// ApplyComplete computes the complete transition. CompletedAt is always
// stamped at the moment of transition.
func ApplyComplete(now time.Time) TransitionResult {
	return TransitionResult{
		NewStatus:   StatusCompleted,
		EventKind:   EventCompleted,
		CompletedAt: &now,
	}
}
