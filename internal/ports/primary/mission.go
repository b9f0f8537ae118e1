// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// MissionService defines the primary port for mission queries and backlog
// management. Lifecycle transitions live on LifecycleService.
type MissionService interface {
	// CreateMission creates a new mission with the given parameters.
	CreateMission(ctx context.Context, req CreateMissionRequest) (*CreateMissionResponse, error)

	// GetMission retrieves a mission by ID.
	GetMission(ctx context.Context, missionID string) (*Mission, error)

	// ListMissions lists missions with optional filters, in insertion order.
	ListMissions(ctx context.Context, filters MissionFilters) ([]*Mission, error)

	// NextCandidate returns the mission the two-tier priority rule selects
	// next, or nil when both tiers are empty. Always derived from the
	// store, never from cached state.
	NextCandidate(ctx context.Context) (*Mission, error)

	// StatusCounts returns mission counts keyed by status.
	StatusCounts(ctx context.Context) (map[string]int, error)

	// ImportBacklog creates the missions declared in a backlog manifest,
	// preserving manifest order as insertion order.
	ImportBacklog(ctx context.Context, req ImportBacklogRequest) (*ImportBacklogResponse, error)
}

// CreateMissionRequest contains parameters for creating a mission.
type CreateMissionRequest struct {
	ID          string // optional; generated when empty
	Title       string
	Kind        string // optional; defaults to general
	Description string
	Status      string // optional; defaults to Not Started. Imports may declare any legal status.
}

// CreateMissionResponse contains the result of creating a mission.
type CreateMissionResponse struct {
	Mission *Mission
}

// Mission represents a mission entity at the port boundary.
type Mission struct {
	ID          string
	Title       string
	Kind        string
	Description string
	Status      string
	CreatedAt   string
	StartedAt   string
	CompletedAt string
}

// MissionFilters contains filter options for listing missions.
type MissionFilters struct {
	Status string
	Kind   string
	Limit  int
}

// ImportBacklogRequest contains parameters for a backlog import.
type ImportBacklogRequest struct {
	Missions []CreateMissionRequest
}

// ImportBacklogResponse contains the result of a backlog import.
type ImportBacklogResponse struct {
	Created []*Mission
}
