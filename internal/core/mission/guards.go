package mission

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanStart evaluates whether a mission in the given status may be started.
// Rule: starting an already-active mission re-affirms the start; only a
// completed mission blocks it.
func CanStart(current Status) GuardResult {
	if current.IsTerminal() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot start a mission with status %s", current),
		}
	}
	return GuardResult{Allowed: true}
}

// CanComplete evaluates whether a mission in the given status may be
// completed. Rule: only active missions (In Progress or Current) qualify.
func CanComplete(current Status) GuardResult {
	if !current.IsActive() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot complete a mission with status %s - mission must be active", current),
		}
	}
	return GuardResult{Allowed: true}
}
