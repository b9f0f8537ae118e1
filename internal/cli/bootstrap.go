// Package cli provides CLI commands for the bosun application.
package cli

import (
	"context"

	"github.com/example/bosun/internal/agent"
	"github.com/example/bosun/internal/ctxutil"
	"github.com/example/bosun/internal/wire"
)

// NewContext creates a context.Background() with the acting agent
// embedded. CLI commands use this instead of context.Background()
// directly so every lifecycle event carries a consistent agent name.
// An explicit --agent flag on a command still wins over the context.
func NewContext() context.Context {
	actor := agent.Resolve("", wire.Config())
	return ctxutil.WithAgent(context.Background(), actor)
}
