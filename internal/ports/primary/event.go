// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// EventService defines the primary port for reading the mission event
// audit trail.
type EventService interface {
	// ListMissionEvents retrieves all events for a mission, oldest first.
	ListMissionEvents(ctx context.Context, missionID string) ([]*MissionEvent, error)

	// ListRecentEvents retrieves the most recent events across all
	// missions, newest first.
	ListRecentEvents(ctx context.Context, limit int) ([]*MissionEvent, error)
}
