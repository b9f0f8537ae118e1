// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// SessionLauncher defines the secondary port for mission workspace
// sessions (tmux).
type SessionLauncher interface {
	// SessionExists reports whether a session with the given name exists.
	SessionExists(ctx context.Context, name string) bool

	// CreateMissionSession creates a detached session for a mission,
	// starting in workingDir.
	CreateMissionSession(ctx context.Context, name, workingDir string) error

	// ListSessions returns the names of all running sessions.
	ListSessions(ctx context.Context) ([]string, error)

	// AttachInstructions returns the shell command a user runs to attach.
	AttachInstructions(sessionName string) string
}
