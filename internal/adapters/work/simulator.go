// Package work contains WorkExecutor implementations.
package work

import (
	"context"
	"fmt"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/secondary"
)

// Simulator implements secondary.WorkExecutor with canned work keyed on
// the mission kind. It stands in for a real agent integration so the
// full start-work-complete cycle can run end to end.
type Simulator struct{}

// NewSimulator creates a new work simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Execute simulates the work for a mission and reports what was done.
func (s *Simulator) Execute(ctx context.Context, mission *secondary.MissionRecord) (*secondary.WorkReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var report *secondary.WorkReport
	switch coremission.Kind(mission.Kind) {
	case coremission.KindFoundation:
		report = &secondary.WorkReport{
			Steps: []string{
				"Working on foundation utilities...",
				"Implementing core functions...",
				"Writing tests...",
			},
			Summary: "Implemented foundation utilities with 100% test coverage",
		}
	case coremission.KindDataProtocol:
		report = &secondary.WorkReport{
			Steps: []string{
				"Working on data protocol implementation...",
				"Creating protocol validators...",
				"Adding data transformation functions...",
			},
			Summary: "Completed data protocol implementation with validation",
		}
	case coremission.KindTestSuite:
		report = &secondary.WorkReport{
			Steps: []string{
				"Working on test suite...",
				"Creating comprehensive tests...",
				"Running coverage analysis...",
			},
			Summary: "Completed test suite with 100% coverage",
		}
	default:
		report = &secondary.WorkReport{
			Steps:   []string{"Executing generic mission work..."},
			Summary: "Completed mission work",
		}
	}

	report.Notes = fmt.Sprintf("Mission %s completed successfully. %s", mission.ID, report.Summary)
	return report, nil
}

// Ensure Simulator implements the interface
var _ secondary.WorkExecutor = (*Simulator)(nil)
