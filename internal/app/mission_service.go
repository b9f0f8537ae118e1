package app

import (
	"context"
	"fmt"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/ports/secondary"
)

// MissionServiceImpl implements the MissionService interface.
type MissionServiceImpl struct {
	missionRepo secondary.MissionRepository
}

// NewMissionService creates a new MissionService with injected dependencies.
func NewMissionService(missionRepo secondary.MissionRepository) *MissionServiceImpl {
	return &MissionServiceImpl{missionRepo: missionRepo}
}

// CreateMission creates a new mission.
func (s *MissionServiceImpl) CreateMission(ctx context.Context, req primary.CreateMissionRequest) (*primary.CreateMissionResponse, error) {
	// 1. Validate inputs against core vocabulary
	if req.Title == "" {
		return nil, fmt.Errorf("mission title is required")
	}
	kind, err := coremission.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	// 2. Resolve the ID: explicit ids come from backlog imports, anything
	// else gets the next generated one
	id := req.ID
	if id == "" {
		id, err = s.missionRepo.GetNextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate mission ID: %w", err)
		}
	}

	// 3. Initial status from core unless the request declares one.
	// Queued places an entry ahead of plain backlog in the selection order.
	status := coremission.InitialStatus()
	if req.Status != "" {
		status, err = coremission.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
	}

	// 4. Create mission record with pre-populated ID and status
	record := &secondary.MissionRecord{
		ID:          id,
		Title:       req.Title,
		Kind:        string(kind),
		Status:      string(status),
		Description: req.Description,
	}
	if err := s.missionRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &primary.CreateMissionResponse{
		Mission: recordToMission(record),
	}, nil
}

// GetMission retrieves a mission by ID.
func (s *MissionServiceImpl) GetMission(ctx context.Context, missionID string) (*primary.Mission, error) {
	record, err := s.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	return recordToMission(record), nil
}

// ListMissions lists missions with optional filters.
func (s *MissionServiceImpl) ListMissions(ctx context.Context, filters primary.MissionFilters) ([]*primary.Mission, error) {
	records, err := s.missionRepo.List(ctx, secondary.MissionFilters{
		Status: filters.Status,
		Kind:   filters.Kind,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, err
	}

	missions := make([]*primary.Mission, len(records))
	for i, r := range records {
		missions[i] = recordToMission(r)
	}
	return missions, nil
}

// NextCandidate returns the mission the two-tier priority rule selects
// next, or nil when both tiers are empty. Derived from the store on
// every call.
func (s *MissionServiceImpl) NextCandidate(ctx context.Context) (*primary.Mission, error) {
	record, err := s.missionRepo.NextCandidate(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return recordToMission(record), nil
}

// StatusCounts returns mission counts keyed by status.
func (s *MissionServiceImpl) StatusCounts(ctx context.Context) (map[string]int, error) {
	return s.missionRepo.CountByStatus(ctx)
}

// ImportBacklog creates the missions declared in a backlog manifest.
// Entries are created one by one in manifest order; the import stops at
// the first failure, leaving earlier entries in place.
func (s *MissionServiceImpl) ImportBacklog(ctx context.Context, req primary.ImportBacklogRequest) (*primary.ImportBacklogResponse, error) {
	if len(req.Missions) == 0 {
		return nil, fmt.Errorf("backlog import has no missions")
	}

	created := make([]*primary.Mission, 0, len(req.Missions))
	for i, entry := range req.Missions {
		resp, err := s.CreateMission(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("backlog entry %d (%s): %w", i+1, entry.Title, err)
		}
		created = append(created, resp.Mission)
	}

	return &primary.ImportBacklogResponse{Created: created}, nil
}

// recordToMission converts a persistence record to the boundary type.
// Shared by every service that hands missions across the primary ports.
func recordToMission(r *secondary.MissionRecord) *primary.Mission {
	return &primary.Mission{
		ID:          r.ID,
		Title:       r.Title,
		Kind:        r.Kind,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
	}
}

// Ensure MissionServiceImpl implements the interface
var _ primary.MissionService = (*MissionServiceImpl)(nil)
