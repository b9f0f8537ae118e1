package mission

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable reports that the ledger backend cannot be reached
// at all, as opposed to merely failing a health probe.
var ErrStoreUnavailable = errors.New("mission store unavailable")

// ErrNoMissions reports that candidate selection found nothing in either
// tier.
var ErrNoMissions = errors.New("no available missions")

// NotFoundError reports an operation against a mission id absent from
// the ledger.
type NotFoundError struct {
	MissionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mission %s not found", e.MissionID)
}

// InvalidTransitionError reports a start or complete call that the
// mission's current status does not permit. Carries both the status the
// transition would have applied and the status actually found.
type InvalidTransitionError struct {
	MissionID string
	Attempted Status
	Actual    Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for mission %s: cannot move to %s from %s",
		e.MissionID, e.Attempted, e.Actual)
}

// TransitionConflictError reports a conditional status update whose guard
// matched nothing: the status changed between validation and write, so a
// concurrent writer got there first. Distinct from InvalidTransitionError
// so callers can tell a race from a bad request.
type TransitionConflictError struct {
	MissionID string
	Expected  []Status
	Actual    Status
}

func (e *TransitionConflictError) Error() string {
	return fmt.Sprintf("transition conflict for mission %s: status is %s, expected one of %v",
		e.MissionID, e.Actual, e.Expected)
}

// QueryFailureError wraps an unexpected error from a read query with the
// operation that ran it.
type QueryFailureError struct {
	Op  string
	Err error
}

func (e *QueryFailureError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Op, e.Err)
}

func (e *QueryFailureError) Unwrap() error {
	return e.Err
}
