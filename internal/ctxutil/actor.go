// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// AgentKey is the context key for the acting agent name.
// Exported so it can be used consistently across packages.
type AgentKey struct{}

// WithAgent returns a context with the acting agent name embedded.
func WithAgent(ctx context.Context, agent string) context.Context {
	return context.WithValue(ctx, AgentKey{}, agent)
}

// AgentFromContext returns the acting agent name from context, or empty
// string if not set.
func AgentFromContext(ctx context.Context) string {
	if v := ctx.Value(AgentKey{}); v != nil {
		return v.(string)
	}
	return ""
}
