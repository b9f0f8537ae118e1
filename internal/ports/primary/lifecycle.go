// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// LifecycleService defines the primary port for the mission lifecycle
// state machine: the start and complete transitions and the scoped
// setup/teardown around them.
type LifecycleService interface {
	// StartMission promotes a mission to In Progress and records a
	// started event. Starting an already-active mission re-affirms the
	// start; starting a completed mission is an invalid transition.
	StartMission(ctx context.Context, req StartMissionRequest) (*StartMissionResponse, error)

	// CompleteMission moves an active mission to Completed, records a
	// completed event, and reports which mission the priority rule
	// selects next (reflecting the just-applied completion).
	CompleteMission(ctx context.Context, req CompleteMissionRequest) (*CompleteMissionResponse, error)

	// EnsureDatabase makes sure the required storage structures exist.
	// Idempotent; safe to call repeatedly.
	EnsureDatabase() error

	// Close releases resources the engine holds. Idempotent.
	Close() error
}

// StartMissionRequest contains parameters for starting a mission.
type StartMissionRequest struct {
	MissionID       string
	Agent           string // optional; falls back to actor in context, then config
	Summary         string // optional; defaulted when empty
	AppendToJournal bool
}

// StartMissionResponse contains the result of starting a mission.
type StartMissionResponse struct {
	Event *MissionEvent
}

// CompleteMissionRequest contains parameters for completing a mission.
type CompleteMissionRequest struct {
	MissionID       string
	Agent           string // optional; falls back to actor in context, then config
	Summary         string
	Notes           string
	AppendToJournal bool
}

// CompleteMissionResponse contains the result of completing a mission.
type CompleteMissionResponse struct {
	Event         *MissionEvent
	NextMissionID string // empty when nothing remains to work on
}

// MissionEvent represents a lifecycle event at the port boundary.
type MissionEvent struct {
	ID        string
	MissionID string
	Kind      string
	Agent     string
	Summary   string
	Notes     string
	CreatedAt string
}
