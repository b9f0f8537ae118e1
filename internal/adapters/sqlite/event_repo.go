package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/secondary"
)

// EventRepository implements secondary.EventRepository with SQLite.
// Events are read-only here: the only write path is insertEventTx, which
// runs inside MissionRepository.Transition so a status change and its
// audit record commit together or not at all.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new SQLite event repository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// insertEventTx appends a lifecycle event inside an open transaction.
// Fills ID and CreatedAt when the caller left them empty.
func insertEventTx(ctx context.Context, tx *sql.Tx, event *secondary.MissionEventRecord) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt == "" {
		event.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	createdTime, err := time.Parse(time.RFC3339, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("invalid event created_at %q: %w", event.CreatedAt, err)
	}

	var notes sql.NullString
	if event.Notes != "" {
		notes = sql.NullString{String: event.Notes, Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO mission_events (id, mission_id, kind, agent, summary, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		event.ID, event.MissionID, event.Kind, event.Agent, event.Summary, notes, createdTime,
	)
	if err != nil {
		return &coremission.QueryFailureError{Op: "append event", Err: err}
	}

	return nil
}

// ListByMission retrieves all events for a mission, oldest first.
// rowid breaks same-timestamp ties so start always sorts before complete.
func (r *EventRepository) ListByMission(ctx context.Context, missionID string) ([]*secondary.MissionEventRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, mission_id, kind, agent, summary, notes, created_at FROM mission_events WHERE mission_id = ? ORDER BY created_at, rowid",
		missionID,
	)
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "list events", Err: err}
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRecent retrieves the most recent events across all missions,
// newest first.
func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.MissionEventRecord, error) {
	query := "SELECT id, mission_id, kind, agent, summary, notes, created_at FROM mission_events ORDER BY created_at DESC, rowid DESC"
	args := []any{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "list recent events", Err: err}
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CountByMission returns the number of events for a mission.
func (r *EventRepository) CountByMission(ctx context.Context, missionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM mission_events WHERE mission_id = ?",
		missionID,
	).Scan(&count)
	if err != nil {
		return 0, &coremission.QueryFailureError{Op: "count events", Err: err}
	}

	return count, nil
}

func scanEvents(rows *sql.Rows) ([]*secondary.MissionEventRecord, error) {
	var events []*secondary.MissionEventRecord
	for rows.Next() {
		var (
			notes     sql.NullString
			createdAt time.Time
		)

		record := &secondary.MissionEventRecord{}
		err := rows.Scan(&record.ID, &record.MissionID, &record.Kind, &record.Agent, &record.Summary, &notes, &createdAt)
		if err != nil {
			return nil, &coremission.QueryFailureError{Op: "scan event", Err: err}
		}

		record.Notes = notes.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		events = append(events, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &coremission.QueryFailureError{Op: "scan event", Err: err}
	}

	return events, nil
}

// Ensure EventRepository implements the interface
var _ secondary.EventRepository = (*EventRepository)(nil)
