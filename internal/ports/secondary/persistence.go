// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// MissionRepository defines the secondary port for mission persistence.
type MissionRepository interface {
	// Create persists a new mission.
	Create(ctx context.Context, mission *MissionRecord) error

	// GetByID retrieves a mission by its ID.
	GetByID(ctx context.Context, id string) (*MissionRecord, error)

	// List retrieves missions matching the given filters, in insertion order.
	List(ctx context.Context, filters MissionFilters) ([]*MissionRecord, error)

	// NextCandidate returns the highest-priority mission under the
	// two-tier selection rule, or nil when both tiers are empty.
	NextCandidate(ctx context.Context) (*MissionRecord, error)

	// GetNextID returns the next available mission ID.
	GetNextID(ctx context.Context) (string, error)

	// CountByStatus returns mission counts keyed by status.
	CountByStatus(ctx context.Context) (map[string]int, error)

	// Transition applies a guarded status update and appends the event
	// record in a single transaction. The update matches only while the
	// mission's status is one of FromStatuses; anything else rolls the
	// whole write back.
	Transition(ctx context.Context, transition MissionTransition) (*MissionEventRecord, error)
}

// MissionRecord represents a mission as stored in persistence.
type MissionRecord struct {
	ID          string
	Title       string
	Kind        string
	Status      string
	Description string // Empty string means null
	CreatedAt   string
	StartedAt   string // Empty string means null
	CompletedAt string // Empty string means null
}

// MissionFilters contains filter options for querying missions.
type MissionFilters struct {
	Status string
	Kind   string
	Limit  int
}

// MissionTransition describes a guarded lifecycle write: the status
// update plus the event that records it. Timestamps are RFC3339 strings;
// empty string means leave the column untouched.
type MissionTransition struct {
	MissionID    string
	FromStatuses []string // expected prior statuses (conditional update guard)
	ToStatus     string
	StartedAt    string
	CompletedAt  string
	Event        MissionEventRecord // ID and MissionID are filled by the adapter
}

// MissionEventRecord represents a lifecycle event as stored in persistence.
type MissionEventRecord struct {
	ID        string
	MissionID string
	Kind      string // "started" or "completed"
	Agent     string
	Summary   string
	Notes     string // Empty string means null
	CreatedAt string
}

// EventRepository defines the secondary port for reading the mission event
// audit trail. Events are immutable and written only inside
// MissionRepository.Transition.
type EventRepository interface {
	// ListByMission retrieves all events for a mission, oldest first.
	ListByMission(ctx context.Context, missionID string) ([]*MissionEventRecord, error)

	// ListRecent retrieves the most recent events across all missions.
	ListRecent(ctx context.Context, limit int) ([]*MissionEventRecord, error)

	// CountByMission returns the number of events for a mission.
	CountByMission(ctx context.Context, missionID string) (int, error)
}
