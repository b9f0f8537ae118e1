package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/db"
)

func TestOpenMissingLedgerFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bosun.db")

	_, err := db.Open(path, db.Options{CreateMissing: false})
	if err == nil {
		t.Fatal("Open on missing ledger succeeded, want error")
	}
	if !errors.Is(err, mission.ErrStoreUnavailable) {
		t.Errorf("Open error = %v, want ErrStoreUnavailable", err)
	}
}

func TestOpenCreateMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bosun.db")

	store, err := db.Open(path, db.Options{CreateMissing: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	health, err := store.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
	if !health.OK {
		t.Errorf("HealthCheck OK = false (%s), want true", health.Message)
	}
}

func TestHealthCheckWithoutSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bosun.db")

	store, err := db.Open(path, db.Options{CreateMissing: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// File exists but no schema was applied: reachable, not healthy.
	health, err := store.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
	if health.OK {
		t.Error("HealthCheck OK = true on schemaless ledger, want false")
	}
	if !strings.Contains(health.Message, "missions table") {
		t.Errorf("HealthCheck message = %q, want mention of missions table", health.Message)
	}
}

func TestHealthCheckClosedStore(t *testing.T) {
	store, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err = store.HealthCheck(context.Background())
	if err == nil {
		t.Fatal("HealthCheck on closed store succeeded, want error")
	}
	if !errors.Is(err, mission.ErrStoreUnavailable) {
		t.Errorf("HealthCheck error = %v, want ErrStoreUnavailable", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	store, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bosun.db")

	store, err := db.Open(path, db.Options{CreateMissing: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("first EnsureSchema failed: %v", err)
	}
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}

	if _, err := store.DB().Exec(
		"INSERT INTO missions (id, title, kind, status) VALUES ('MSN-001', 'Schema check', 'general', 'Queued')",
	); err != nil {
		t.Fatalf("insert after EnsureSchema failed: %v", err)
	}
}

func TestEnsureSchemaMigratesLegacyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bosun.db")

	store, err := db.Open(path, db.Options{CreateMissing: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// Simulate a ledger created before the kind column existed: missions
	// table present, no schema_version table.
	_, err = store.DB().Exec(`
		CREATE TABLE missions (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Not Started',
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			started_at DATETIME,
			completed_at DATETIME
		)
	`)
	if err != nil {
		t.Fatalf("failed to create legacy missions table: %v", err)
	}
	if _, err := store.DB().Exec(
		"INSERT INTO missions (id, title, status) VALUES ('MSN-001', 'Legacy mission', 'Queued')",
	); err != nil {
		t.Fatalf("failed to insert legacy mission: %v", err)
	}

	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema on legacy ledger failed: %v", err)
	}

	// The v2 migration backfills kind with the default.
	var kind string
	err = store.DB().QueryRow("SELECT kind FROM missions WHERE id = 'MSN-001'").Scan(&kind)
	if err != nil {
		t.Fatalf("failed to read migrated kind: %v", err)
	}
	if kind != "general" {
		t.Errorf("migrated kind = %q, want %q", kind, "general")
	}
}

func TestSeedFixtures(t *testing.T) {
	store, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := db.SeedFixtures(store.DB()); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	var count int
	if err := store.DB().QueryRow("SELECT COUNT(*) FROM missions").Scan(&count); err != nil {
		t.Fatalf("failed to count missions: %v", err)
	}
	if count != 4 {
		t.Errorf("seeded mission count = %d, want 4", count)
	}

	// The seeded backlog leads with a queued mission so a fresh demo run
	// has an unambiguous candidate.
	var status string
	if err := store.DB().QueryRow("SELECT status FROM missions WHERE id = 'foundation-utils'").Scan(&status); err != nil {
		t.Fatalf("failed to read seeded mission: %v", err)
	}
	if status != "Queued" {
		t.Errorf("foundation-utils status = %q, want %q", status, "Queued")
	}
}

func TestSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bosun.db")

	store, err := db.Open(path, db.Options{CreateMissing: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	version, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("version before EnsureSchema = %d, want 0", version)
	}

	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	version, err = store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != db.LatestSchemaVersion() {
		t.Errorf("version = %d, want %d", version, db.LatestSchemaVersion())
	}
}
