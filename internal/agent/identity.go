// Package agent resolves which agent name goes on lifecycle events.
package agent

import (
	"strings"

	"github.com/example/bosun/internal/config"
)

// DefaultName is the agent recorded when nothing more specific is known.
const DefaultName = "Code Agent"

// Resolve picks the acting agent name.
// Precedence: explicit value (usually a --agent flag), then the
// configured agent, then the default.
func Resolve(explicit string, cfg *config.Config) string {
	if name := strings.TrimSpace(explicit); name != "" {
		return name
	}
	if cfg != nil {
		if name := strings.TrimSpace(cfg.Agent); name != "" {
			return name
		}
	}
	return DefaultName
}
