package cli

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/bosun/internal/wire"
)

// AttachCmd returns the attach command
func AttachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attach [mission-id]",
		Short: "Create or attach to a mission's tmux workspace",
		Long: `Create or attach to the tmux workspace session for a mission.

Without an argument the session belongs to the mission the priority
rule would pick next. The session is named after the mission
(bosun-<mission-id>) and starts in the data directory. If the session
does not exist yet it is created detached first.

Examples:
  bosun attach              # Workspace for the next candidate
  bosun attach MSN-001      # Workspace for a specific mission`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			var missionID string
			if len(args) > 0 {
				mission, err := wire.MissionService().GetMission(ctx, args[0])
				if err != nil {
					return err
				}
				missionID = mission.ID
			} else {
				candidate, err := wire.MissionService().NextCandidate(ctx)
				if err != nil {
					return fmt.Errorf("failed to select candidate: %w", err)
				}
				if candidate == nil {
					return fmt.Errorf("no mission to attach to: the backlog is empty")
				}
				missionID = candidate.ID
			}

			launcher, err := wire.SessionLauncher()
			if err != nil {
				return fmt.Errorf("tmux unavailable: %w", err)
			}

			cfg := wire.Config()
			sessionName := cfg.SessionName(missionID)

			if !launcher.SessionExists(ctx, sessionName) {
				if err := launcher.CreateMissionSession(ctx, sessionName, cfg.DataDir); err != nil {
					return fmt.Errorf("failed to create session: %w", err)
				}
				fmt.Printf("✓ Created session %s\n", sessionName)
			}

			tmuxPath, err := exec.LookPath("tmux")
			if err != nil {
				return fmt.Errorf("tmux not found in PATH: %w", err)
			}

			fmt.Printf("✓ Attaching to session: %s\n", sessionName)

			// Replace the current process so the user lands straight in tmux.
			execArgs := []string{"tmux", "attach", "-t", sessionName}
			if err := syscall.Exec(tmuxPath, execArgs, os.Environ()); err != nil {
				return fmt.Errorf("failed to exec tmux attach: %w", err)
			}

			// Unreachable when exec succeeds.
			return nil
		},
	}
}
