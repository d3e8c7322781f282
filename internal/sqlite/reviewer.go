package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/repository"
)

// ReviewerRepository implements assignment.ReviewerDirectory for SQLite
type ReviewerRepository struct {
	db *DB
}

// NewReviewerRepository creates a new ReviewerRepository
func NewReviewerRepository(db *DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// Upsert inserts or updates a reviewer pool member
func (r *ReviewerRepository) Upsert(ctx context.Context, rev *assignment.Reviewer) error {
	query := `
		INSERT INTO reviewers (id, name, team_id, active)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			team_id = excluded.team_id,
			active = excluded.active
	`
	_, err := r.db.ExecContext(ctx, query, rev.ID, rev.Name, rev.TeamID, rev.Active)
	if err != nil {
		return fmt.Errorf("failed to upsert reviewer: %w", err)
	}
	return nil
}

// Get retrieves a reviewer by ID
func (r *ReviewerRepository) Get(ctx context.Context, id string) (*assignment.Reviewer, error) {
	var rev assignment.Reviewer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, team_id, active FROM reviewers WHERE id = ?`, id,
	).Scan(&rev.ID, &rev.Name, &rev.TeamID, &rev.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewer: %w", err)
	}
	return &rev, nil
}

// ListActive returns active reviewers, optionally restricted to a team,
// in stable id order so round-robin distribution is deterministic
func (r *ReviewerRepository) ListActive(ctx context.Context, teamID *string) ([]assignment.Reviewer, error) {
	query := `SELECT id, name, team_id, active FROM reviewers WHERE active = 1`
	args := []any{}
	if teamID != nil {
		query += ` AND team_id = ?`
		args = append(args, *teamID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active reviewers: %w", err)
	}
	defer rows.Close()

	var reviewers []assignment.Reviewer
	for rows.Next() {
		var rev assignment.Reviewer
		if err := rows.Scan(&rev.ID, &rev.Name, &rev.TeamID, &rev.Active); err != nil {
			return nil, fmt.Errorf("failed to scan reviewer: %w", err)
		}
		reviewers = append(reviewers, rev)
	}
	return reviewers, rows.Err()
}
