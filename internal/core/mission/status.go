// Package mission contains the pure business logic for mission selection
// and lifecycle. This is part of the Functional Core - no I/O, only pure
// functions.
package mission

import "fmt"

// Status represents the persisted state of a mission.
// Values are stored in the ledger verbatim, spaces included.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusQueued     Status = "Queued"
	StatusInProgress Status = "In Progress"
	StatusCurrent    Status = "Current"
	StatusCompleted  Status = "Completed"
)

// NewWorkTier is the first selection tier, in rank order: fresh work that
// has never been picked up. Queued outranks Not Started.
var NewWorkTier = []Status{StatusQueued, StatusNotStarted}

// ActiveTier is the second selection tier, in rank order: work already
// underway, consulted only when the new-work tier is empty. In Progress
// outranks Current.
var ActiveTier = []Status{StatusInProgress, StatusCurrent}

// AllStatuses lists every legal status value.
var AllStatuses = []Status{
	StatusNotStarted,
	StatusQueued,
	StatusInProgress,
	StatusCurrent,
	StatusCompleted,
}

// ParseStatus validates a raw status string from the ledger or user input.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses {
		if Status(s) == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown mission status %q", s)
}

// IsNew reports whether the status belongs to the new-work tier.
func (s Status) IsNew() bool {
	return s == StatusQueued || s == StatusNotStarted
}

// IsActive reports whether the status belongs to the active tier.
func (s Status) IsActive() bool {
	return s == StatusInProgress || s == StatusCurrent
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// InitialStatus returns the status assigned to a newly created mission.
func InitialStatus() Status {
	return StatusNotStarted
}

// StartableStatuses returns the statuses from which a start transition is
// legal, in tier order. Used as the expected-prior-status guard on the
// conditional start update.
func StartableStatuses() []Status {
	statuses := make([]Status, 0, len(NewWorkTier)+len(ActiveTier))
	statuses = append(statuses, NewWorkTier...)
	statuses = append(statuses, ActiveTier...)
	return statuses
}

// CompletableStatuses returns the statuses from which a complete
// transition is legal.
func CompletableStatuses() []Status {
	statuses := make([]Status, len(ActiveTier))
	copy(statuses, ActiveTier)
	return statuses
}
