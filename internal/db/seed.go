package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the ledger with a development backlog that
// exercises every status tier and mission kind. Insertion order matters:
// selection breaks status ties by rowid, so the fixtures are written in
// the order the demos expect. Reruns leave existing rows untouched.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC().Format(time.RFC3339)

	missions := []struct{ id, title, kind, status string }{
		{"foundation-utils", "Foundation utility layer", "foundation", "Queued"},
		{"data-protocol-v1", "Data protocol implementation", "data-protocol", "Not Started"},
		{"test-suite-core", "Core test suite", "test-suite", "Not Started"},
		{"MSN-004", "Operator handbook", "general", "Not Started"},
	}
	for _, m := range missions {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO missions (id, title, kind, status, created_at) VALUES (?, ?, ?, ?, ?)",
			m.id, m.title, m.kind, m.status, now,
		); err != nil {
			return fmt.Errorf("seed missions: %w", err)
		}
	}

	return nil
}
