// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// JournalWriter defines the secondary port for the optional on-disk
// journal: one appended line per lifecycle event. Write-only sink; the
// database event table remains the authoritative audit trail.
type JournalWriter interface {
	// Append writes one journal line for the event.
	Append(ctx context.Context, event *MissionEventRecord) error
}
