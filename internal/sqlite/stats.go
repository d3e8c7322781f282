package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/auditline/auditline/internal/domain/assignment"
)

// StatsRepository implements stats.Store for SQLite
type StatsRepository struct {
	db *DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountByReviewer counts one reviewer's assignments in a given status
func (r *StatsRepository) CountByReviewer(ctx context.Context, reviewerID string, status assignment.Status) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_assignments WHERE reviewer_id = ? AND status = ?`,
		reviewerID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

// CountCompletedSince counts a reviewer's completed assignments whose
// submission happened at or after the given time
func (r *StatsRepository) CountCompletedSince(ctx context.Context, reviewerID string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM audit_assignments a
		JOIN audit_responses resp ON resp.assignment_id = a.id
		WHERE a.reviewer_id = ?
		  AND a.status = ?
		  AND resp.submitted_at >= ?
	`
	var count int
	err := r.db.QueryRowContext(ctx, query, reviewerID, assignment.StatusCompleted, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed assignments: %w", err)
	}
	return count, nil
}

// CountAll counts every assignment
func (r *StatsRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_assignments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

// CountByStatus counts assignments in a given status across all reviewers
func (r *StatsRepository) CountByStatus(ctx context.Context, status assignment.Status) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_assignments WHERE status = ?`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments by status: %w", err)
	}
	return count, nil
}

// AverageScore averages submitted response scores; an empty reviewerID
// spans the whole pool
func (r *StatsRepository) AverageScore(ctx context.Context, reviewerID string) (float64, error) {
	query := `
		SELECT COALESCE(AVG(resp.overall_score), 0)
		FROM audit_responses resp
		JOIN audit_assignments a ON a.id = resp.assignment_id
		WHERE resp.status = 'completed'
	`
	args := []any{}
	if reviewerID != "" {
		query += ` AND a.reviewer_id = ?`
		args = append(args, reviewerID)
	}

	var avg float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average scores: %w", err)
	}
	return avg, nil
}
