// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// WorkflowService defines the primary port for a single workflow pass:
// health check, candidate selection, start, work execution, completion,
// and the follow-up candidate lookup. One mission per invocation; no
// retries, no looping.
type WorkflowService interface {
	RunWorkflow(ctx context.Context, req RunWorkflowRequest) (*RunWorkflowResponse, error)
}

// RunWorkflowRequest contains parameters for a workflow pass.
type RunWorkflowRequest struct {
	Agent           string // optional; falls back to actor in context, then config
	DryRun          bool   // stop after reporting the candidate; no writes
	AppendToJournal bool
}

// RunWorkflowResponse contains the outcome of a workflow pass.
type RunWorkflowResponse struct {
	HealthMessage string
	Mission       *Mission // the candidate that was (or would be) worked
	PromotedFrom  string   // status the mission held before the start transition
	StartEvent    *MissionEvent
	WorkSteps     []string
	WorkSummary   string
	CompleteEvent *MissionEvent
	NextMissionID string // empty when the backlog is drained
	DryRun        bool
}
