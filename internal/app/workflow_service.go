package app

import (
	"context"
	"fmt"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/ports/secondary"
)

// WorkflowServiceImpl implements the WorkflowService interface. It
// composes the lifecycle service with a work executor into a single
// select-start-work-complete pass.
type WorkflowServiceImpl struct {
	store       secondary.StorageGateway
	missionRepo secondary.MissionRepository
	lifecycle   primary.LifecycleService
	executor    secondary.WorkExecutor
}

// NewWorkflowService creates a new WorkflowService with injected dependencies.
func NewWorkflowService(
	store secondary.StorageGateway,
	missionRepo secondary.MissionRepository,
	lifecycle primary.LifecycleService,
	executor secondary.WorkExecutor,
) *WorkflowServiceImpl {
	return &WorkflowServiceImpl{
		store:       store,
		missionRepo: missionRepo,
		lifecycle:   lifecycle,
		executor:    executor,
	}
}

// RunWorkflow executes one workflow pass over the highest-priority
// mission. Returns ErrNoMissions when both selection tiers are empty.
func (s *WorkflowServiceImpl) RunWorkflow(ctx context.Context, req primary.RunWorkflowRequest) (*primary.RunWorkflowResponse, error) {
	// 1. Probe the ledger before touching it
	health, err := s.store.HealthCheck(ctx)
	if err != nil {
		return nil, err
	}
	if !health.OK {
		return nil, fmt.Errorf("ledger unhealthy: %s", health.Message)
	}

	// 2. Select the candidate under the two-tier priority rule
	candidate, err := s.missionRepo.NextCandidate(ctx)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, coremission.ErrNoMissions
	}

	response := &primary.RunWorkflowResponse{
		HealthMessage: health.Message,
		Mission:       recordToMission(candidate),
		PromotedFrom:  candidate.Status,
		DryRun:        req.DryRun,
	}

	// 3. Dry run stops here: report the candidate, write nothing
	if req.DryRun {
		return response, nil
	}

	// 4. Start the mission
	started, err := s.lifecycle.StartMission(ctx, primary.StartMissionRequest{
		MissionID:       candidate.ID,
		Agent:           req.Agent,
		AppendToJournal: req.AppendToJournal,
	})
	if err != nil {
		return nil, err
	}
	response.StartEvent = started.Event

	// 5. Execute the work. A failure here leaves the mission In
	// Progress, where the active tier picks it up again on the next run.
	report, err := s.executor.Execute(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("mission %s work failed: %w", candidate.ID, err)
	}
	response.WorkSteps = report.Steps
	response.WorkSummary = report.Summary

	// 6. Complete the mission and pick up the follow-up candidate
	completed, err := s.lifecycle.CompleteMission(ctx, primary.CompleteMissionRequest{
		MissionID:       candidate.ID,
		Agent:           req.Agent,
		Summary:         report.Summary,
		Notes:           report.Notes,
		AppendToJournal: req.AppendToJournal,
	})
	if err != nil {
		return nil, err
	}
	response.CompleteEvent = completed.Event
	response.NextMissionID = completed.NextMissionID

	return response, nil
}

// Ensure WorkflowServiceImpl implements the interface
var _ primary.WorkflowService = (*WorkflowServiceImpl)(nil)
