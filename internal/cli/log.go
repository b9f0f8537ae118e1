package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	var missionID string
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the mission event audit trail",
		Long: `Show recorded mission lifecycle events.

Without flags the most recent events across all missions are shown,
newest first. With --mission the full history of one mission is shown,
oldest first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			var events []*primary.MissionEvent
			var err error
			if missionID != "" {
				events, err = wire.EventService().ListMissionEvents(ctx, missionID)
			} else {
				events, err = wire.EventService().ListRecentEvents(ctx, limit)
			}
			if err != nil {
				return fmt.Errorf("failed to fetch events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events recorded")
				return nil
			}

			fmt.Printf("Found %d events:\n\n", len(events))
			for _, e := range events {
				printEventLine(e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&missionID, "mission", "", "Show the full history of one mission")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")

	return cmd
}

func printEventLine(e *primary.MissionEvent) {
	agent := e.Agent
	if agent == "" {
		agent = "-"
	}

	fmt.Printf("%s | %s %-9s | %-12s | %s: %s",
		formatTimestamp(e.CreatedAt),
		getEventIcon(e.Kind),
		e.Kind,
		e.MissionID,
		agent,
		e.Summary,
	)
	if e.Notes != "" {
		fmt.Printf(" | %s", e.Notes)
	}
	fmt.Println()
}

func getEventIcon(kind string) string {
	switch coremission.EventKind(kind) {
	case coremission.EventStarted:
		return ">"
	case coremission.EventCompleted:
		return "✓"
	default:
		return "?"
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}
