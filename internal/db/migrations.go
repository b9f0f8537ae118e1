package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_missions_and_mission_events",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_kind_column_to_missions",
		Up:      migrationV2,
	},
}

// RunMigrations applies any pending migrations in order, recording each
// in the schema_version table.
func (s *Store) RunMigrations() error {
	// Create schema_version table if it doesn't exist
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(s.db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// Record migration
		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 creates the original missions and mission_events tables.
// Early ledgers carried no kind column; v2 adds it.
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS missions (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			status TEXT NOT NULL CHECK(status IN ('Not Started', 'Queued', 'In Progress', 'Current', 'Completed')) DEFAULT 'Not Started',
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			started_at DATETIME,
			completed_at DATETIME
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create missions table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS mission_events (
			id TEXT PRIMARY KEY,
			mission_id TEXT NOT NULL,
			kind TEXT NOT NULL CHECK(kind IN ('started', 'completed')),
			agent TEXT NOT NULL,
			summary TEXT NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (mission_id) REFERENCES missions(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create mission_events table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_missions_status ON missions(status)`)
	if err != nil {
		return fmt.Errorf("failed to create missions status index: %w", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_mission_events_mission ON mission_events(mission_id)`)
	if err != nil {
		return fmt.Errorf("failed to create mission_events mission index: %w", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_mission_events_created ON mission_events(created_at)`)
	if err != nil {
		return fmt.Errorf("failed to create mission_events created index: %w", err)
	}

	return nil
}

// migrationV2 adds the typed kind column. Existing rows default to
// general; the CHECK constraint only exists on fresh installs because
// SQLite cannot add one via ALTER TABLE.
func migrationV2(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE missions ADD COLUMN kind TEXT NOT NULL DEFAULT 'general'`)
	if err != nil {
		return fmt.Errorf("failed to add kind column: %w", err)
	}
	return nil
}

// LatestSchemaVersion returns the highest migration version this binary
// knows about.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].Version
}

// SchemaVersion reports the highest applied migration version, or zero
// when no migration has run yet.
func (s *Store) SchemaVersion() (int, error) {
	var tables int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tables)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect schema: %w", err)
	}
	if tables == 0 {
		return 0, nil
	}
	var version int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
