// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/secondary"
)

// MissionRepository implements secondary.MissionRepository with SQLite.
type MissionRepository struct {
	db *sql.DB
}

// NewMissionRepository creates a new SQLite mission repository.
func NewMissionRepository(db *sql.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Create persists a new mission.
// The mission record must have ID, Kind and Status pre-populated by the
// service layer.
func (r *MissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	if mission.ID == "" {
		return fmt.Errorf("mission ID must be pre-populated by service layer")
	}
	if mission.Kind == "" {
		return fmt.Errorf("mission Kind must be pre-populated by service layer")
	}
	if mission.Status == "" {
		return fmt.Errorf("mission Status must be pre-populated by service layer")
	}

	var desc sql.NullString
	if mission.Description != "" {
		desc = sql.NullString{String: mission.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO missions (id, title, kind, description, status) VALUES (?, ?, ?, ?, ?)",
		mission.ID, mission.Title, mission.Kind, desc, mission.Status,
	)
	if err != nil {
		return &coremission.QueryFailureError{Op: "create mission", Err: err}
	}

	return nil
}

// GetByID retrieves a mission by its ID.
func (r *MissionRepository) GetByID(ctx context.Context, id string) (*secondary.MissionRecord, error) {
	var (
		desc        sql.NullString
		createdAt   time.Time
		startedAt   sql.NullTime
		completedAt sql.NullTime
	)

	record := &secondary.MissionRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, kind, status, description, created_at, started_at, completed_at FROM missions WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Title, &record.Kind, &record.Status, &desc, &createdAt, &startedAt, &completedAt)

	if err == sql.ErrNoRows {
		return nil, &coremission.NotFoundError{MissionID: id}
	}
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "get mission", Err: err}
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if startedAt.Valid {
		record.StartedAt = startedAt.Time.Format(time.RFC3339)
	}
	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// List retrieves missions matching the given filters, in insertion order.
func (r *MissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	query := "SELECT id, title, kind, status, description, created_at, started_at, completed_at FROM missions WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filters.Kind)
	}

	query += " ORDER BY rowid"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "list missions", Err: err}
	}
	defer rows.Close()

	var missions []*secondary.MissionRecord
	for rows.Next() {
		var (
			desc        sql.NullString
			createdAt   time.Time
			startedAt   sql.NullTime
			completedAt sql.NullTime
		)

		record := &secondary.MissionRecord{}
		err := rows.Scan(&record.ID, &record.Title, &record.Kind, &record.Status, &desc, &createdAt, &startedAt, &completedAt)
		if err != nil {
			return nil, &coremission.QueryFailureError{Op: "scan mission", Err: err}
		}

		record.Description = desc.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		if startedAt.Valid {
			record.StartedAt = startedAt.Time.Format(time.RFC3339)
		}
		if completedAt.Valid {
			record.CompletedAt = completedAt.Time.Format(time.RFC3339)
		}

		missions = append(missions, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &coremission.QueryFailureError{Op: "list missions", Err: err}
	}

	return missions, nil
}

// NextCandidate returns the highest-priority mission under the two-tier
// selection rule, or nil when both tiers are empty. Each tier runs as its
// own query so the active tier is only consulted when the new-work tier
// comes back empty.
func (r *MissionRepository) NextCandidate(ctx context.Context) (*secondary.MissionRecord, error) {
	for _, tier := range [][]coremission.Status{coremission.NewWorkTier, coremission.ActiveTier} {
		record, err := r.nextInTier(ctx, tier)
		if err != nil {
			return nil, err
		}
		if record != nil {
			return record, nil
		}
	}
	return nil, nil
}

// nextInTier picks the top mission within one tier. The status rank is
// generated from the tier's order so the selection rule stays in the core
// package, not in this SQL. Missions sharing a status rank fall back to
// rowid, which is insertion order.
func (r *MissionRepository) nextInTier(ctx context.Context, tier []coremission.Status) (*secondary.MissionRecord, error) {
	placeholders := make([]string, len(tier))
	ranks := make([]string, len(tier))
	args := make([]any, 0, len(tier)*2)
	for i, status := range tier {
		placeholders[i] = "?"
		ranks[i] = fmt.Sprintf("WHEN ? THEN %d", i)
		args = append(args, string(status))
	}
	for _, status := range tier {
		args = append(args, string(status))
	}

	query := fmt.Sprintf(
		"SELECT id, title, kind, status, description, created_at, started_at, completed_at FROM missions WHERE status IN (%s) ORDER BY CASE status %s END, rowid LIMIT 1",
		strings.Join(placeholders, ", "),
		strings.Join(ranks, " "),
	)

	var (
		desc        sql.NullString
		createdAt   time.Time
		startedAt   sql.NullTime
		completedAt sql.NullTime
	)

	record := &secondary.MissionRecord{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&record.ID, &record.Title, &record.Kind, &record.Status, &desc, &createdAt, &startedAt, &completedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "next candidate", Err: err}
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if startedAt.Valid {
		record.StartedAt = startedAt.Time.Format(time.RFC3339)
	}
	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// GetNextID returns the next available mission ID.
// Uses core function for ID format to keep business logic in the functional core.
// Imported missions may carry arbitrary ids, so only generated ids count
// toward the max.
func (r *MissionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len("MSN-") + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM missions WHERE id LIKE 'MSN-%%'", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", &coremission.QueryFailureError{Op: "next mission id", Err: err}
	}

	return coremission.GenerateMissionID(maxID), nil
}

// CountByStatus returns mission counts keyed by status.
func (r *MissionRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM missions GROUP BY status")
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "count by status", Err: err}
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, &coremission.QueryFailureError{Op: "count by status", Err: err}
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, &coremission.QueryFailureError{Op: "count by status", Err: err}
	}

	return counts, nil
}

// Transition applies a guarded status update and appends the event record
// in a single transaction. The update only matches while the mission's
// status is one of FromStatuses; a guard miss rolls everything back and
// reports either a missing mission or a conflict carrying the status
// actually found.
func (r *MissionRepository) Transition(ctx context.Context, transition secondary.MissionTransition) (*secondary.MissionEventRecord, error) {
	if transition.MissionID == "" {
		return nil, fmt.Errorf("transition MissionID must be set")
	}
	if transition.ToStatus == "" {
		return nil, fmt.Errorf("transition ToStatus must be set")
	}
	if len(transition.FromStatuses) == 0 {
		return nil, fmt.Errorf("transition FromStatuses must not be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "begin transition", Err: err}
	}
	defer tx.Rollback()

	query := "UPDATE missions SET status = ?"
	args := []any{transition.ToStatus}

	if transition.StartedAt != "" {
		startedTime, err := time.Parse(time.RFC3339, transition.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid started_at %q: %w", transition.StartedAt, err)
		}
		query += ", started_at = ?"
		args = append(args, sql.NullTime{Time: startedTime, Valid: true})
	}

	if transition.CompletedAt != "" {
		completedTime, err := time.Parse(time.RFC3339, transition.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid completed_at %q: %w", transition.CompletedAt, err)
		}
		query += ", completed_at = ?"
		args = append(args, sql.NullTime{Time: completedTime, Valid: true})
	}

	guards := make([]string, len(transition.FromStatuses))
	for i := range transition.FromStatuses {
		guards[i] = "?"
	}
	query += fmt.Sprintf(" WHERE id = ? AND status IN (%s)", strings.Join(guards, ", "))
	args = append(args, transition.MissionID)
	for _, status := range transition.FromStatuses {
		args = append(args, status)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, &coremission.QueryFailureError{Op: "transition mission", Err: err}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		// Guard missed: either the mission is gone or a concurrent writer
		// moved it. Re-read inside the transaction to tell the two apart.
		var actual string
		err := tx.QueryRowContext(ctx,
			"SELECT status FROM missions WHERE id = ?", transition.MissionID,
		).Scan(&actual)
		if err == sql.ErrNoRows {
			return nil, &coremission.NotFoundError{MissionID: transition.MissionID}
		}
		if err != nil {
			return nil, &coremission.QueryFailureError{Op: "transition mission", Err: err}
		}

		expected := make([]coremission.Status, len(transition.FromStatuses))
		for i, status := range transition.FromStatuses {
			expected[i] = coremission.Status(status)
		}
		return nil, &coremission.TransitionConflictError{
			MissionID: transition.MissionID,
			Expected:  expected,
			Actual:    coremission.Status(actual),
		}
	}

	event := transition.Event
	event.MissionID = transition.MissionID
	if err := insertEventTx(ctx, tx, &event); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &coremission.QueryFailureError{Op: "commit transition", Err: err}
	}

	return &event, nil
}

// Ensure MissionRepository implements the interface
var _ secondary.MissionRepository = (*MissionRepository)(nil)
