package sqlite

import (
	"context"
	"fmt"

	"github.com/auditline/auditline/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends a workflow event
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	query := `
		INSERT INTO activity_log (
			assignment_id, call_record_id, reviewer_id, event_type, summary, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		entry.AssignmentID,
		entry.CallID,
		entry.ReviewerID,
		entry.EventType,
		entry.Summary,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// Recent lists the latest workflow events, newest first
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	query := `
		SELECT id, assignment_id, call_record_id, reviewer_id, event_type, summary, created_at
		FROM activity_log
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.AssignmentID,
			&entry.CallID,
			&entry.ReviewerID,
			&entry.EventType,
			&entry.Summary,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
