// Package tmux adapts the gotmux library to the session launcher port.
// Each mission gets at most one workspace session, named by the
// configured prefix plus the mission id.
package tmux

import (
	"context"
	"fmt"

	"github.com/GianlucaP106/gotmux/gotmux"

	"github.com/example/bosun/internal/ports/secondary"
)

// GotmuxAdapter wraps the gotmux library for mission workspace sessions.
type GotmuxAdapter struct {
	tmux *gotmux.Tmux
}

// NewGotmuxAdapter creates a new gotmux adapter.
func NewGotmuxAdapter() (*GotmuxAdapter, error) {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux client: %w", err)
	}
	return &GotmuxAdapter{tmux: tmux}, nil
}

// SessionExists checks if a tmux session exists.
func (g *GotmuxAdapter) SessionExists(ctx context.Context, name string) bool {
	sessions, err := g.tmux.ListSessions()
	if err != nil {
		return false
	}
	for _, s := range sessions {
		if s.Name == name {
			return true
		}
	}
	return false
}

// CreateMissionSession creates a detached session rooted in workingDir.
// The caller attaches separately; creation never grabs the terminal.
func (g *GotmuxAdapter) CreateMissionSession(ctx context.Context, name, workingDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := g.tmux.NewSession(&gotmux.SessionOptions{
		Name:           name,
		StartDirectory: workingDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create session %s: %w", name, err)
	}
	return nil
}

// ListSessions returns the names of all running tmux sessions.
func (g *GotmuxAdapter) ListSessions(ctx context.Context) ([]string, error) {
	sessions, err := g.tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	names := make([]string, 0, len(sessions))
	for _, s := range sessions {
		names = append(names, s.Name)
	}
	return names, nil
}

// AttachInstructions returns instructions for attaching to a session.
func (g *GotmuxAdapter) AttachInstructions(sessionName string) string {
	return fmt.Sprintf("Attach to session: tmux attach -t %s\n"+
		"Detach again: Ctrl+b then d\n", sessionName)
}

// Ensure GotmuxAdapter implements the interface
var _ secondary.SessionLauncher = (*GotmuxAdapter)(nil)
