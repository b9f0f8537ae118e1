package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/wire"
)

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	var agentName string
	var dryRun bool
	var journal bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Work the next mission end to end",
		Long: `Run one workflow pass: probe the ledger, select the next mission
under the priority rule, start it, execute its work, complete it, and
report what comes next.

One mission per invocation; run again to work the follow-up. A dry run
stops after reporting the candidate and writes nothing.

Examples:
  bosun run
  bosun run --dry-run
  bosun run --agent "Night Shift" --journal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			resp, err := wire.WorkflowService().RunWorkflow(ctx, primary.RunWorkflowRequest{
				Agent:           agentName,
				DryRun:          dryRun,
				AppendToJournal: journal,
			})
			if errors.Is(err, coremission.ErrNoMissions) {
				fmt.Println("✗ No available missions found in the ledger")
				return nil
			}
			if err != nil {
				return err
			}

			mission := resp.Mission
			fmt.Printf("✓ Found mission: %s (status: %s)\n", mission.ID, formatStatus(resp.PromotedFrom))

			if resp.DryRun {
				fmt.Printf("  Mission %s would be promoted to In Progress\n", mission.ID)
				fmt.Println("Dry run: no transitions applied")
				return nil
			}

			fmt.Printf("\nStarting mission: %s\n", mission.ID)
			fmt.Printf("✓ Mission %s started\n", mission.ID)

			fmt.Printf("\nExecuting mission work: %s\n", mission.ID)
			for _, step := range resp.WorkSteps {
				fmt.Printf("  - %s\n", step)
			}
			fmt.Printf("  Work completed: %s\n", resp.WorkSummary)

			fmt.Printf("\nCompleting mission: %s\n", mission.ID)
			fmt.Printf("✓ Mission %s completed\n", mission.ID)
			if resp.NextMissionID != "" {
				fmt.Printf("  Next mission: %s\n", resp.NextMissionID)
			} else {
				fmt.Println("  No missions remaining in the backlog")
			}

			fmt.Println()
			fmt.Println(color.New(color.FgHiGreen).Sprint("✓ Mission workflow completed"))
			return nil
		},
	}

	cmd.Flags().StringVar(&agentName, "agent", "", "Agent name recorded on events")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the candidate without working it")
	cmd.Flags().BoolVar(&journal, "journal", false, "Append lifecycle events to the on-disk journal")

	return cmd
}
