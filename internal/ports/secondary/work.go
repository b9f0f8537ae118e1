// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// WorkExecutor defines the secondary port for performing mission work.
// The lifecycle core does not know what the work is; it only records that
// work happened via the returned report.
type WorkExecutor interface {
	// Execute performs the work for a mission and reports what was done.
	Execute(ctx context.Context, mission *MissionRecord) (*WorkReport, error)
}

// WorkReport summarizes completed mission work. Summary becomes the
// completion event summary; Notes the completion notes. Steps is the
// progress narration for presentation layers to render.
type WorkReport struct {
	Steps   []string
	Summary string
	Notes   string
}
