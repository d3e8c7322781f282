package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/auditline/auditline/internal/domain/activity"
	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/domain/schema"
	"github.com/auditline/auditline/internal/domain/scoring"
	"github.com/auditline/auditline/internal/repository"
)

// Service drives the audit response lifecycle: draft saves, submission
// with scoring, and response retrieval.
type Service struct {
	responses       ResponseStore
	assignments     AssignmentStore
	schemas         SchemaStore
	activities      ActivityLog
	defaultSchemaID string
	logger          *slog.Logger
}

// NewService creates a new review service. defaultSchemaID is the form
// used when a payload names no schema.
func NewService(
	responses ResponseStore,
	assignments AssignmentStore,
	schemas SchemaStore,
	activities ActivityLog,
	defaultSchemaID string,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		responses:       responses,
		assignments:     assignments,
		schemas:         schemas,
		activities:      activities,
		defaultSchemaID: defaultSchemaID,
		logger:          logger,
	}
}

// SaveDraft upserts the response for an assignment, always leaving it in
// draft state. No scoring is performed; repeated saves are last-write-wins.
// Nil highlights leave previously saved highlights untouched.
func (s *Service) SaveDraft(ctx context.Context, assignmentID string, responses map[string]any, highlights []Highlight) error {
	if assignmentID == "" {
		return ErrInvalidInput
	}
	a, err := s.getAssignment(ctx, assignmentID)
	if err != nil {
		return err
	}

	resp, err := s.responses.GetByAssignment(ctx, assignmentID)
	switch {
	case err == nil:
		resp.Responses = responses
		if highlights != nil {
			resp.Highlights = highlights
		}
		resp.Status = StatusDraft
	case errors.Is(err, repository.ErrNotFound):
		resp = &Response{
			ID:           uuid.NewString(),
			AssignmentID: assignmentID,
			SchemaID:     s.defaultSchemaID,
			Responses:    responses,
			Highlights:   highlights,
			Status:       StatusDraft,
			StartedAt:    time.Now(),
		}
	default:
		return fmt.Errorf("loading draft response: %w", err)
	}

	if err := s.responses.Upsert(ctx, resp); err != nil {
		return fmt.Errorf("saving draft response: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			AssignmentID: &assignmentID,
			ReviewerID:   &a.ReviewerID,
			EventType:    activity.TypeDraftSaved,
			Summary:      fmt.Sprintf("draft saved for assignment %s", assignmentID),
		})
	}

	return nil
}

// SubmitRequest is the payload for a completed audit.
type SubmitRequest struct {
	SchemaID   string
	Responses  map[string]any
	Highlights []Highlight
	Comments   *string
}

// Submit finalizes the audit for an assignment: it resolves the form
// schema (falling back to the configured default, and to schema-less
// scoring when neither resolves), computes the score and compliance
// verdict, stamps the submission time and completes both the response and
// the owning assignment. Any prior draft is overwritten, never duplicated.
func (s *Service) Submit(ctx context.Context, assignmentID string, req SubmitRequest) (string, error) {
	if assignmentID == "" {
		return "", ErrInvalidInput
	}
	a, err := s.getAssignment(ctx, assignmentID)
	if err != nil {
		return "", err
	}

	schemaID := req.SchemaID
	if schemaID == "" {
		schemaID = s.defaultSchemaID
	}
	sc := s.resolveSchema(ctx, schemaID)

	score := scoring.Score(req.Responses, sc)
	verdict := scoring.Evaluate(req.Responses, score, sc)
	now := time.Now()

	resp, err := s.responses.GetByAssignment(ctx, assignmentID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		resp = &Response{
			ID:           uuid.NewString(),
			AssignmentID: assignmentID,
			StartedAt:    now,
		}
	default:
		return "", fmt.Errorf("loading response: %w", err)
	}

	resp.SchemaID = schemaID
	resp.Responses = req.Responses
	if req.Highlights != nil {
		resp.Highlights = req.Highlights
	}
	resp.Comments = req.Comments
	resp.OverallScore = score
	resp.Compliance = verdict
	resp.Status = StatusCompleted
	resp.SubmittedAt = &now

	if err := s.responses.Upsert(ctx, resp); err != nil {
		return "", fmt.Errorf("storing submitted response: %w", err)
	}

	if err := s.assignments.SetStatus(ctx, assignmentID, assignment.StatusCompleted); err != nil {
		return "", fmt.Errorf("completing assignment: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			AssignmentID: &assignmentID,
			ReviewerID:   &a.ReviewerID,
			EventType:    activity.TypeAuditSubmitted,
			Summary:      fmt.Sprintf("audit submitted for assignment %s", assignmentID),
		})
	}

	s.logger.Info("audit submitted",
		"assignment_id", assignmentID,
		"score", score,
		"compliance", verdict,
	)
	return resp.ID, nil
}

// Response returns the audit response for an assignment.
func (s *Service) Response(ctx context.Context, assignmentID string) (*Response, error) {
	if assignmentID == "" {
		return nil, ErrInvalidInput
	}
	resp, err := s.responses.GetByAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResponseNotFound
		}
		return nil, fmt.Errorf("loading response: %w", err)
	}
	return resp, nil
}

func (s *Service) getAssignment(ctx context.Context, id string) (*assignment.Assignment, error) {
	a, err := s.assignments.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("loading assignment: %w", err)
	}
	return a, nil
}

// resolveSchema returns nil when the schema cannot be found, degrading
// submission to the schema-less scoring path rather than failing it.
func (s *Service) resolveSchema(ctx context.Context, id string) *schema.Schema {
	sc, err := s.schemas.Get(ctx, id)
	if err != nil {
		s.logger.Warn("form schema unresolvable, using fallback scoring", "schema_id", id, "error", err)
		return nil
	}
	return sc
}
