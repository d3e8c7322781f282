package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/repository"
)

// AssignmentRepository implements assignment.AssignmentStore for SQLite
type AssignmentRepository struct {
	db *DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Claim atomically inserts-or-updates the assignment for a call record.
// The UNIQUE constraint on call_record_id turns a concurrent insert into
// an in-place update, so exactly one assignment row survives per call and
// its id is stable across reassignments.
func (r *AssignmentRepository) Claim(ctx context.Context, a *assignment.Assignment) (assignment.ClaimOutcome, error) {
	query := `
		INSERT INTO audit_assignments (
			id, call_record_id, reviewer_id, assigned_by, assigned_at,
			due_date, status, priority
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(call_record_id) DO UPDATE SET
			reviewer_id = excluded.reviewer_id,
			assigned_by = excluded.assigned_by,
			due_date = excluded.due_date,
			status = excluded.status
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.CallID,
		a.ReviewerID,
		a.AssignedBy,
		a.AssignedAt,
		a.DueDate,
		a.Status,
		a.Priority,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return assignment.ClaimOutcome{}, repository.ErrForeignKeyViolation
		}
		return assignment.ClaimOutcome{}, fmt.Errorf("failed to claim assignment: %w", err)
	}

	var survivingID string
	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM audit_assignments WHERE call_record_id = ?`, a.CallID,
	).Scan(&survivingID)
	if err != nil {
		return assignment.ClaimOutcome{}, fmt.Errorf("failed to resolve claimed assignment: %w", err)
	}

	return assignment.ClaimOutcome{
		AssignmentID: survivingID,
		Created:      survivingID == a.ID,
	}, nil
}

// Get retrieves an assignment by ID
func (r *AssignmentRepository) Get(ctx context.Context, id string) (*assignment.Assignment, error) {
	query := `
		SELECT id, call_record_id, reviewer_id, assigned_by, assigned_at,
		       due_date, status, priority
		FROM audit_assignments
		WHERE id = ?
	`

	var a assignment.Assignment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.CallID,
		&a.ReviewerID,
		&a.AssignedBy,
		&a.AssignedAt,
		&a.DueDate,
		&a.Status,
		&a.Priority,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &a, nil
}

// SetStatus updates an assignment's workflow status
func (r *AssignmentRepository) SetStatus(ctx context.Context, id string, status assignment.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE audit_assignments SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByReviewer returns a reviewer's assignments joined with their call
// records, newest-assigned-first
func (r *AssignmentRepository) ListByReviewer(ctx context.Context, reviewerID string, status *assignment.Status) ([]assignment.QueueItem, error) {
	query := `
		SELECT a.id, a.call_record_id, a.reviewer_id, a.assigned_by,
		       a.assigned_at, a.due_date, a.status, a.priority,
		       c.id, c.call_id, c.agent_id, c.customer_id, c.date_time,
		       c.duration_seconds, c.campaign_id, c.source, c.transcript_url,
		       c.metadata, c.imported_at, c.retention_until, c.assignment_id
		FROM audit_assignments a
		JOIN call_records c ON c.id = a.call_record_id
		WHERE a.reviewer_id = ?
	`
	args := []any{reviewerID}
	if status != nil {
		query += ` AND a.status = ?`
		args = append(args, *status)
	}
	query += ` ORDER BY a.assigned_at DESC, a.priority DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviewer queue: %w", err)
	}
	defer rows.Close()

	var items []assignment.QueueItem
	for rows.Next() {
		var item assignment.QueueItem
		var metadata *string
		err := rows.Scan(
			&item.Assignment.ID,
			&item.Assignment.CallID,
			&item.Assignment.ReviewerID,
			&item.Assignment.AssignedBy,
			&item.Assignment.AssignedAt,
			&item.Assignment.DueDate,
			&item.Assignment.Status,
			&item.Assignment.Priority,
			&item.Call.ID,
			&item.Call.ExternalID,
			&item.Call.AgentID,
			&item.Call.CustomerID,
			&item.Call.DateTime,
			&item.Call.DurationSeconds,
			&item.Call.CampaignID,
			&item.Call.Source,
			&item.Call.TranscriptURL,
			&metadata,
			&item.Call.ImportedAt,
			&item.Call.RetentionUntil,
			&item.Call.AssignmentID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue item: %w", err)
		}
		if metadata != nil && *metadata != "" {
			if err := unmarshalInto(*metadata, &item.Call.Metadata); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
