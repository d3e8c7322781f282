package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/auditline/auditline/internal/domain/review"
	"github.com/auditline/auditline/internal/domain/scoring"
	"github.com/auditline/auditline/internal/repository"
)

// ResponseRepository implements review.ResponseStore for SQLite
type ResponseRepository struct {
	db *DB
}

// NewResponseRepository creates a new ResponseRepository
func NewResponseRepository(db *DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// GetByAssignment retrieves the response owned by an assignment
func (r *ResponseRepository) GetByAssignment(ctx context.Context, assignmentID string) (*review.Response, error) {
	query := `
		SELECT id, assignment_id, form_schema_id, responses, highlights,
		       overall_score, compliance_result, comments, status,
		       started_at, submitted_at
		FROM audit_responses
		WHERE assignment_id = ?
	`

	var resp review.Response
	var responses string
	var highlights *string
	var compliance *string
	err := r.db.QueryRowContext(ctx, query, assignmentID).Scan(
		&resp.ID,
		&resp.AssignmentID,
		&resp.SchemaID,
		&responses,
		&highlights,
		&resp.OverallScore,
		&compliance,
		&resp.Comments,
		&resp.Status,
		&resp.StartedAt,
		&resp.SubmittedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	if err := unmarshalInto(responses, &resp.Responses); err != nil {
		return nil, err
	}
	if highlights != nil && *highlights != "" {
		if err := unmarshalInto(*highlights, &resp.Highlights); err != nil {
			return nil, err
		}
	}
	if compliance != nil {
		resp.Compliance = scoring.Verdict(*compliance)
	}
	return &resp, nil
}

// Upsert inserts or overwrites the response for an assignment. The UNIQUE
// constraint on assignment_id guarantees a single row per assignment.
func (r *ResponseRepository) Upsert(ctx context.Context, resp *review.Response) error {
	responses, err := json.Marshal(resp.Responses)
	if err != nil {
		return fmt.Errorf("failed to encode responses: %w", err)
	}

	var highlights *string
	if resp.Highlights != nil {
		data, err := json.Marshal(resp.Highlights)
		if err != nil {
			return fmt.Errorf("failed to encode highlights: %w", err)
		}
		s := string(data)
		highlights = &s
	}

	var compliance *string
	if resp.Compliance != "" {
		s := string(resp.Compliance)
		compliance = &s
	}

	query := `
		INSERT INTO audit_responses (
			id, assignment_id, form_schema_id, responses, highlights,
			overall_score, compliance_result, comments, status,
			started_at, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(assignment_id) DO UPDATE SET
			form_schema_id = excluded.form_schema_id,
			responses = excluded.responses,
			highlights = COALESCE(excluded.highlights, audit_responses.highlights),
			overall_score = excluded.overall_score,
			compliance_result = excluded.compliance_result,
			comments = excluded.comments,
			status = excluded.status,
			submitted_at = excluded.submitted_at
	`

	_, err = r.db.ExecContext(ctx, query,
		resp.ID,
		resp.AssignmentID,
		resp.SchemaID,
		string(responses),
		highlights,
		resp.OverallScore,
		compliance,
		resp.Comments,
		resp.Status,
		resp.StartedAt,
		resp.SubmittedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert response: %w", err)
	}
	return nil
}
