package db

// SchemaSQL is the complete modern schema for fresh bosun installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the ledger schema. Tests use it
// via GetSchemaSQL() so repository code that drifts from the schema fails
// immediately with "no such column" at development time.
//
// IMPORTANT: keep this in sync with migrations. When adding columns or
// tables, add a migration in internal/db/migrations.go and update
// SchemaSQL here.
const SchemaSQL = `
-- Missions (the work ledger)
CREATE TABLE IF NOT EXISTS missions (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('foundation', 'data-protocol', 'test-suite', 'general')) DEFAULT 'general',
	status TEXT NOT NULL CHECK(status IN ('Not Started', 'Queued', 'In Progress', 'Current', 'Completed')) DEFAULT 'Not Started',
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	started_at DATETIME,
	completed_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_missions_status ON missions(status);

-- Mission events (immutable lifecycle audit trail)
CREATE TABLE IF NOT EXISTS mission_events (
	id TEXT PRIMARY KEY,
	mission_id TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('started', 'completed')),
	agent TEXT NOT NULL,
	summary TEXT NOT NULL,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (mission_id) REFERENCES missions(id)
);

CREATE INDEX IF NOT EXISTS idx_mission_events_mission ON mission_events(mission_id);
CREATE INDEX IF NOT EXISTS idx_mission_events_created ON mission_events(created_at);
`

// EnsureSchema creates the ledger schema. Idempotent: fresh installs get
// the modern schema directly with all migration versions stamped;
// existing ledgers run any pending migrations.
func (s *Store) EnsureSchema() error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// No version table - check whether an unversioned missions table
		// predates it (migrations needed) or this is a clean file.
		var missionTableCount int
		err = s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='missions'").Scan(&missionTableCount)
		if err != nil {
			return err
		}

		if missionTableCount > 0 {
			return s.RunMigrations()
		}

		// Completely fresh install - create modern schema directly and
		// mark all migrations as applied so they never re-run.
		if _, err = s.db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = s.db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			if _, err = s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return s.RunMigrations()
}

// GetSchemaSQL returns the schema DDL for tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
