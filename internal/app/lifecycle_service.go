package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/bosun/internal/agent"
	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ctxutil"
	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/ports/secondary"
)

// LifecycleServiceImpl implements the LifecycleService interface.
type LifecycleServiceImpl struct {
	store       secondary.StorageGateway
	missionRepo secondary.MissionRepository
	journal     secondary.JournalWriter
}

// NewLifecycleService creates a new LifecycleService with injected dependencies.
func NewLifecycleService(store secondary.StorageGateway, missionRepo secondary.MissionRepository, journal secondary.JournalWriter) *LifecycleServiceImpl {
	return &LifecycleServiceImpl{
		store:       store,
		missionRepo: missionRepo,
		journal:     journal,
	}
}

// StartMission promotes a mission to In Progress and records a started event.
func (s *LifecycleServiceImpl) StartMission(ctx context.Context, req primary.StartMissionRequest) (*primary.StartMissionResponse, error) {
	if req.MissionID == "" {
		return nil, fmt.Errorf("mission ID is required")
	}

	// 1. Load the mission and parse its status against the core vocabulary
	record, err := s.missionRepo.GetByID(ctx, req.MissionID)
	if err != nil {
		return nil, err
	}
	current, err := coremission.ParseStatus(record.Status)
	if err != nil {
		return nil, fmt.Errorf("mission %s has unknown status %q", record.ID, record.Status)
	}

	// 2. Guard: only a completed mission blocks a start
	if guard := coremission.CanStart(current); !guard.Allowed {
		return nil, &coremission.InvalidTransitionError{
			MissionID: record.ID,
			Attempted: coremission.StatusInProgress,
			Actual:    current,
		}
	}

	// 3. Compute the transition. Re-affirming an already-started mission
	// keeps the original start timestamp.
	result := coremission.ApplyStart(record.StartedAt != "", time.Now().UTC())

	// 4. Apply the guarded update and event append in one transaction
	summary := req.Summary
	if summary == "" {
		summary = fmt.Sprintf("Starting mission %s", record.ID)
	}
	transition := secondary.MissionTransition{
		MissionID:    record.ID,
		FromStatuses: statusStrings(coremission.StartableStatuses()),
		ToStatus:     string(result.NewStatus),
		Event: secondary.MissionEventRecord{
			Kind:    string(result.EventKind),
			Agent:   s.resolveAgent(ctx, req.Agent),
			Summary: summary,
		},
	}
	if result.StartedAt != nil {
		transition.StartedAt = result.StartedAt.Format(time.RFC3339)
	}
	event, err := s.missionRepo.Transition(ctx, transition)
	if err != nil {
		return nil, err
	}

	// 5. Optionally mirror the event to the on-disk journal. The
	// transition is already committed; a journal failure still surfaces.
	if req.AppendToJournal && s.journal != nil {
		if err := s.journal.Append(ctx, event); err != nil {
			return nil, fmt.Errorf("failed to append journal entry: %w", err)
		}
	}

	return &primary.StartMissionResponse{
		Event: eventToBoundary(event),
	}, nil
}

// CompleteMission moves an active mission to Completed and reports the
// next candidate under the priority rule.
func (s *LifecycleServiceImpl) CompleteMission(ctx context.Context, req primary.CompleteMissionRequest) (*primary.CompleteMissionResponse, error) {
	if req.MissionID == "" {
		return nil, fmt.Errorf("mission ID is required")
	}

	// 1. Load the mission and parse its status against the core vocabulary
	record, err := s.missionRepo.GetByID(ctx, req.MissionID)
	if err != nil {
		return nil, err
	}
	current, err := coremission.ParseStatus(record.Status)
	if err != nil {
		return nil, fmt.Errorf("mission %s has unknown status %q", record.ID, record.Status)
	}

	// 2. Guard: only active missions qualify for completion
	if guard := coremission.CanComplete(current); !guard.Allowed {
		return nil, &coremission.InvalidTransitionError{
			MissionID: record.ID,
			Attempted: coremission.StatusCompleted,
			Actual:    current,
		}
	}

	// 3. Compute the transition
	result := coremission.ApplyComplete(time.Now().UTC())

	// 4. Apply the guarded update and event append in one transaction
	summary := req.Summary
	if summary == "" {
		summary = fmt.Sprintf("Mission %s completed", record.ID)
	}
	transition := secondary.MissionTransition{
		MissionID:    record.ID,
		FromStatuses: statusStrings(coremission.CompletableStatuses()),
		ToStatus:     string(result.NewStatus),
		CompletedAt:  result.CompletedAt.Format(time.RFC3339),
		Event: secondary.MissionEventRecord{
			Kind:    string(result.EventKind),
			Agent:   s.resolveAgent(ctx, req.Agent),
			Summary: summary,
			Notes:   req.Notes,
		},
	}
	event, err := s.missionRepo.Transition(ctx, transition)
	if err != nil {
		return nil, err
	}

	// 5. Optionally mirror the event to the on-disk journal. The
	// transition is already committed; a journal failure still surfaces.
	if req.AppendToJournal && s.journal != nil {
		if err := s.journal.Append(ctx, event); err != nil {
			return nil, fmt.Errorf("failed to append journal entry: %w", err)
		}
	}

	// 6. Report which mission the priority rule selects now that this
	// one is out of the way
	next, err := s.missionRepo.NextCandidate(ctx)
	if err != nil {
		return nil, err
	}
	response := &primary.CompleteMissionResponse{
		Event: eventToBoundary(event),
	}
	if next != nil {
		response.NextMissionID = next.ID
	}
	return response, nil
}

// EnsureDatabase makes sure the mission schema exists. Idempotent.
func (s *LifecycleServiceImpl) EnsureDatabase() error {
	return s.store.EnsureSchema()
}

// Close releases the underlying store. Idempotent.
func (s *LifecycleServiceImpl) Close() error {
	return s.store.Close()
}

// resolveAgent picks the agent name recorded on an event.
// Precedence: explicit request value, then the actor embedded in the
// context by the CLI bootstrap, then the default.
func (s *LifecycleServiceImpl) resolveAgent(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if actor := ctxutil.AgentFromContext(ctx); actor != "" {
		return actor
	}
	return agent.DefaultName
}

// eventToBoundary converts a persistence event record to the boundary type.
func eventToBoundary(e *secondary.MissionEventRecord) *primary.MissionEvent {
	return &primary.MissionEvent{
		ID:        e.ID,
		MissionID: e.MissionID,
		Kind:      e.Kind,
		Agent:     e.Agent,
		Summary:   e.Summary,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

func statusStrings(statuses []coremission.Status) []string {
	out := make([]string, len(statuses))
	for i, status := range statuses {
		out[i] = string(status)
	}
	return out
}

// Ensure LifecycleServiceImpl implements the interface
var _ primary.LifecycleService = (*LifecycleServiceImpl)(nil)
