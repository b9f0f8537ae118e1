// Package db manages the bosun ledger: SQLite connection lifecycle,
// schema, migrations, and seed fixtures.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/secondary"
)

// Options controls how a Store is opened.
type Options struct {
	// CreateMissing creates the ledger file (and its parent directory)
	// when absent. When false a missing file is a hard failure - the
	// workflow runner never invents a ledger.
	CreateMissing bool
}

// Store is the storage gateway around the ledger connection. It is a
// scoped resource: opened once per process and released on every exit
// path. Close is idempotent.
type Store struct {
	db   *sql.DB
	path string

	closeOnce sync.Once
	closeErr  error
}

// Open opens the ledger at path.
func Open(path string, opts Options) (*Store, error) {
	if opts.CreateMissing {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: no ledger at %s", mission.ErrStoreUnavailable, path)
		}
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mission.ErrStoreUnavailable, err)
	}

	// The pragma below is per-connection, so cap the pool at one. A CLI
	// never needs more.
	database.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Store{db: database, path: path}, nil
}

// OpenMemory opens an in-memory ledger with the schema applied.
// Intended for tests.
func OpenMemory() (*Store, error) {
	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	// A second pool connection would see a fresh empty database.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &Store{db: database, path: ":memory:"}
	if err := store.EnsureSchema(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// DB exposes the underlying connection for repository adapters.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// HealthCheck probes the ledger. A reachable but unhealthy store (for
// example, a file with no missions table) reports OK=false with a
// diagnostic message; an unreachable store returns an error wrapping
// mission.ErrStoreUnavailable.
func (s *Store) HealthCheck(ctx context.Context) (secondary.HealthStatus, error) {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return secondary.HealthStatus{}, fmt.Errorf("%w: %v", mission.ErrStoreUnavailable, err)
	}

	var tableCount int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='missions'",
	).Scan(&tableCount)
	if err != nil {
		return secondary.HealthStatus{}, fmt.Errorf("%w: %v", mission.ErrStoreUnavailable, err)
	}
	if tableCount == 0 {
		return secondary.HealthStatus{
			OK:      false,
			Message: fmt.Sprintf("ledger at %s has no missions table - run 'bosun init'", s.path),
		}, nil
	}

	return secondary.HealthStatus{OK: true, Message: "ledger reachable"}, nil
}

// Close releases the connection. Safe to call multiple times.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		if s.db != nil {
			s.closeErr = s.db.Close()
		}
	})
	return s.closeErr
}

// Ensure Store implements the gateway port
var _ secondary.StorageGateway = (*Store)(nil)
