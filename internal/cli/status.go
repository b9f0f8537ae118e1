package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/wire"
)

// statusColor returns the color a mission status renders in.
func statusColor(status string) *color.Color {
	switch coremission.Status(status) {
	case coremission.StatusQueued:
		return color.New(color.FgHiCyan)
	case coremission.StatusNotStarted:
		return color.New(color.FgWhite)
	case coremission.StatusInProgress:
		return color.New(color.FgHiYellow)
	case coremission.StatusCurrent:
		return color.New(color.FgHiMagenta)
	case coremission.StatusCompleted:
		return color.New(color.FgHiGreen)
	default:
		return color.New()
	}
}

// formatStatus renders a status name in its color.
func formatStatus(status string) string {
	return statusColor(status).Sprint(status)
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the mission ledger at a glance",
		Long: `Display a summary of the mission ledger:
- Mission counts per status
- The mission the priority rule would pick next
- The most recent events

This provides a focused view of "where is the backlog right now?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			counts, err := wire.MissionService().StatusCounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to read ledger: %w", err)
			}

			total := 0
			for _, n := range counts {
				total += n
			}
			fmt.Printf("Mission ledger: %d missions\n\n", total)

			for _, s := range coremission.AllStatuses {
				// Pad before coloring so escape codes do not skew alignment.
				name := statusColor(string(s)).Sprintf("%-12s", string(s))
				fmt.Printf("  %s %d\n", name, counts[string(s)])
			}
			fmt.Println()

			candidate, err := wire.MissionService().NextCandidate(ctx)
			if err != nil {
				return fmt.Errorf("failed to select candidate: %w", err)
			}
			if candidate == nil {
				fmt.Println("No available missions in the backlog")
			} else {
				fmt.Printf("Next up: %s (%s) %s\n", candidate.ID, formatStatus(candidate.Status), candidate.Title)
			}

			events, err := wire.EventService().ListRecentEvents(ctx, 5)
			if err != nil {
				return fmt.Errorf("failed to read events: %w", err)
			}
			if len(events) > 0 {
				fmt.Println()
				fmt.Println("Recent events:")
				for _, e := range events {
					fmt.Printf("  - %s %s %s %s: %s\n", e.CreatedAt, e.Kind, e.MissionID, e.Agent, e.Summary)
				}
			}

			return nil
		},
	}
}
