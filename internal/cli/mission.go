package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/bosun/internal/manifest"
	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/wire"
)

// MissionCmd returns the mission command
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Manage the mission backlog",
		Long:  `Create, inspect, and transition missions in the bosun ledger.`,
	}

	cmd.AddCommand(missionAddCmd())
	cmd.AddCommand(missionListCmd())
	cmd.AddCommand(missionShowCmd())
	cmd.AddCommand(missionNextCmd())
	cmd.AddCommand(missionStartCmd())
	cmd.AddCommand(missionCompleteCmd())
	cmd.AddCommand(missionImportCmd())

	return cmd
}

func missionAddCmd() *cobra.Command {
	var kind string
	var queue bool
	var description string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a mission to the backlog",
		Long: `Add a mission to the backlog.

New missions start as 'Not Started'. With --queue they start as
'Queued', which outranks plain backlog entries in selection order.

Examples:
  bosun mission add "Implement data protocol" --kind data-protocol
  bosun mission add "Hotfix flaky export" --queue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			req := primary.CreateMissionRequest{
				Title:       args[0],
				Kind:        kind,
				Description: description,
			}
			if queue {
				req.Status = "Queued"
			}

			resp, err := wire.MissionService().CreateMission(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create mission: %w", err)
			}

			mission := resp.Mission
			fmt.Printf("✓ Created mission %s: %s [%s]\n", mission.ID, mission.Title, mission.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Mission kind: foundation, data-protocol, test-suite, general")
	cmd.Flags().BoolVar(&queue, "queue", false, "Create as 'Queued' (selected before 'Not Started')")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")

	return cmd
}

func missionListCmd() *cobra.Command {
	var status string
	var kind string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			missions, err := wire.MissionService().ListMissions(ctx, primary.MissionFilters{
				Status: status,
				Kind:   kind,
				Limit:  limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list missions: %w", err)
			}

			if len(missions) == 0 {
				fmt.Println("No missions found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tKIND\tTITLE")
			for _, m := range missions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Status, m.Kind, m.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (e.g. 'Queued', 'In Progress')")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows (0 = all)")

	return cmd
}

func missionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [mission-id]",
		Short: "Show mission details and its event history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			id := args[0]

			mission, err := wire.MissionService().GetMission(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("\nMission: %s\n", mission.ID)
			fmt.Printf("Title:   %s\n", mission.Title)
			fmt.Printf("Kind:    %s\n", mission.Kind)
			fmt.Printf("Status:  %s\n", formatStatus(mission.Status))
			if mission.Description != "" {
				fmt.Printf("Description: %s\n", mission.Description)
			}
			fmt.Printf("Created: %s\n", mission.CreatedAt)
			if mission.StartedAt != "" {
				fmt.Printf("Started: %s\n", mission.StartedAt)
			}
			if mission.CompletedAt != "" {
				fmt.Printf("Completed: %s\n", mission.CompletedAt)
			}
			fmt.Println()

			events, err := wire.EventService().ListMissionEvents(ctx, id)
			if err == nil && len(events) > 0 {
				fmt.Println("Events:")
				for _, e := range events {
					fmt.Printf("  - %s %s %s: %s\n", e.CreatedAt, e.Kind, e.Agent, e.Summary)
				}
				fmt.Println()
			}

			return nil
		},
	}
}

func missionNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show which mission would be worked next",
		Long: `Show the mission the two-tier priority rule selects next.

Tier 1 is new work ('Queued' before 'Not Started'); tier 2 is work
already underway ('In Progress' before 'Current'). Ties break by
insertion order. The answer is computed from the ledger on every call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			mission, err := wire.MissionService().NextCandidate(ctx)
			if err != nil {
				return fmt.Errorf("failed to select candidate: %w", err)
			}
			if mission == nil {
				fmt.Println("No available missions in the backlog")
				return nil
			}

			fmt.Printf("Next up: %s (%s) %s\n", mission.ID, formatStatus(mission.Status), mission.Title)
			return nil
		},
	}
}

func missionStartCmd() *cobra.Command {
	var summary string
	var journal bool

	cmd := &cobra.Command{
		Use:   "start [mission-id]",
		Short: "Start a mission (promote to In Progress)",
		Long: `Promote a mission to 'In Progress' and record a started event.

Starting an already-active mission re-affirms the start without
touching the original start timestamp. Starting a completed mission
fails.

Examples:
  bosun mission start MSN-001
  bosun mission start MSN-001 --summary "Picking this up" --journal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			resp, err := wire.LifecycleService().StartMission(ctx, primary.StartMissionRequest{
				MissionID:       args[0],
				Summary:         summary,
				AppendToJournal: journal,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Mission %s started\n", resp.Event.MissionID)
			fmt.Printf("  %s %s: %s\n", resp.Event.CreatedAt, resp.Event.Agent, resp.Event.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&summary, "summary", "", "Event summary (defaulted when empty)")
	cmd.Flags().BoolVar(&journal, "journal", false, "Also append the event to the on-disk journal")

	return cmd
}

func missionCompleteCmd() *cobra.Command {
	var summary string
	var notes string
	var journal bool

	cmd := &cobra.Command{
		Use:   "complete [mission-id]",
		Short: "Complete an active mission",
		Long: `Move an active mission to 'Completed' and record a completed event.

Only missions in 'In Progress' or 'Current' qualify. The command also
reports which mission the priority rule selects next.

Examples:
  bosun mission complete MSN-001 --summary "Shipped" --notes "All checks green"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			resp, err := wire.LifecycleService().CompleteMission(ctx, primary.CompleteMissionRequest{
				MissionID:       args[0],
				Summary:         summary,
				Notes:           notes,
				AppendToJournal: journal,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Mission %s completed\n", resp.Event.MissionID)
			fmt.Printf("  %s %s: %s\n", resp.Event.CreatedAt, resp.Event.Agent, resp.Event.Summary)
			if resp.NextMissionID != "" {
				fmt.Printf("Next up: %s\n", resp.NextMissionID)
			} else {
				fmt.Println("No missions remaining in the backlog")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&summary, "summary", "", "Event summary (defaulted when empty)")
	cmd.Flags().StringVar(&notes, "notes", "", "Completion notes for the audit trail")
	cmd.Flags().BoolVar(&journal, "journal", false, "Also append the event to the on-disk journal")

	return cmd
}

func missionImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a YAML backlog manifest",
		Long: `Import missions from a YAML backlog manifest.

The manifest is a list of missions under a 'missions' key:

  missions:
    - id: foundation-utils        # optional; generated when omitted
      title: Foundation utilities
      kind: foundation            # optional; defaults to general
      status: Queued              # optional; defaults to Not Started
    - title: Data protocol
      kind: data-protocol

Entries are inserted in file order, so the manifest order is the
selection tie-break order. The import stops at the first invalid
entry, leaving earlier entries in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			backlog, err := manifest.LoadBacklog(args[0])
			if err != nil {
				return err
			}

			req := primary.ImportBacklogRequest{}
			for _, entry := range backlog.Missions {
				req.Missions = append(req.Missions, primary.CreateMissionRequest{
					ID:          entry.ID,
					Title:       entry.Title,
					Kind:        entry.Kind,
					Status:      entry.Status,
					Description: entry.Description,
				})
			}

			resp, err := wire.MissionService().ImportBacklog(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Imported %d missions\n", len(resp.Created))
			for _, m := range resp.Created {
				fmt.Printf("  - %s [%s] %s\n", m.ID, m.Status, m.Title)
			}
			return nil
		},
	}
}
