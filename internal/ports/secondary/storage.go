// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// StorageGateway defines the secondary port for ledger lifecycle
// management: health probing, schema setup, and release. The repositories
// handle the data; this handles the store itself.
type StorageGateway interface {
	// HealthCheck probes the ledger. A reachable store with missing
	// structures reports OK=false rather than an error.
	HealthCheck(ctx context.Context) (HealthStatus, error)

	// EnsureSchema makes sure the required storage structures exist.
	// Idempotent.
	EnsureSchema() error

	// Close releases the store. Idempotent.
	Close() error
}

// HealthStatus is the outcome of a liveness probe.
type HealthStatus struct {
	OK      bool
	Message string
}
