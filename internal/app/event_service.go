package app

import (
	"context"

	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/ports/secondary"
)

// EventServiceImpl implements the EventService interface.
type EventServiceImpl struct {
	eventRepo   secondary.EventRepository
	missionRepo secondary.MissionRepository
}

// NewEventService creates a new EventService with injected dependencies.
func NewEventService(eventRepo secondary.EventRepository, missionRepo secondary.MissionRepository) *EventServiceImpl {
	return &EventServiceImpl{
		eventRepo:   eventRepo,
		missionRepo: missionRepo,
	}
}

// ListMissionEvents retrieves all events for a mission, oldest first.
// An unknown mission ID is an error, not an empty list.
func (s *EventServiceImpl) ListMissionEvents(ctx context.Context, missionID string) ([]*primary.MissionEvent, error) {
	if _, err := s.missionRepo.GetByID(ctx, missionID); err != nil {
		return nil, err
	}

	records, err := s.eventRepo.ListByMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	return eventsToBoundary(records), nil
}

// ListRecentEvents retrieves the most recent events across all missions,
// newest first. A limit of zero means no limit.
func (s *EventServiceImpl) ListRecentEvents(ctx context.Context, limit int) ([]*primary.MissionEvent, error) {
	records, err := s.eventRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return eventsToBoundary(records), nil
}

func eventsToBoundary(records []*secondary.MissionEventRecord) []*primary.MissionEvent {
	events := make([]*primary.MissionEvent, len(records))
	for i, r := range records {
		events[i] = eventToBoundary(r)
	}
	return events
}

// Ensure EventServiceImpl implements the interface
var _ primary.EventService = (*EventServiceImpl)(nil)
