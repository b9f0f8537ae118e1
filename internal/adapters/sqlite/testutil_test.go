// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/bosun/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// One connection only, or each pool connection gets its own empty
	// in-memory database.
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedMission inserts a test mission and returns its ID.
func seedMission(t *testing.T, db *sql.DB, id, status string) string {
	t.Helper()
	if id == "" {
		id = "MSN-001"
	}
	if status == "" {
		status = "Not Started"
	}
	_, err := db.Exec("INSERT INTO missions (id, title, kind, status) VALUES (?, ?, 'general', ?)", id, "Test Mission "+id, status)
	if err != nil {
		t.Fatalf("failed to seed mission: %v", err)
	}
	return id
}

// seedEvent inserts a test lifecycle event and returns its ID.
// createdAt uses the driver's plain datetime format, e.g. "2026-01-20 12:00:00".
func seedEvent(t *testing.T, db *sql.DB, id, missionID, kind, createdAt string) string {
	t.Helper()
	if id == "" {
		id = "evt-001"
	}
	if kind == "" {
		kind = "started"
	}
	if createdAt == "" {
		createdAt = "2026-01-20 12:00:00"
	}
	_, err := db.Exec(
		"INSERT INTO mission_events (id, mission_id, kind, agent, summary, created_at) VALUES (?, ?, ?, 'Code Agent', 'Test event', ?)",
		id, missionID, kind, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}
	return id
}
