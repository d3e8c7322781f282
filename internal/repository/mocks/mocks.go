package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/auditline/auditline/internal/domain/activity"
	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/domain/review"
	"github.com/auditline/auditline/internal/domain/schema"
)

// CallRepository is a mock for repository.CallRepository.
type CallRepository struct {
	mock.Mock
}

func (m *CallRepository) Create(ctx context.Context, call *assignment.CallRecord) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *CallRepository) Get(ctx context.Context, id string) (*assignment.CallRecord, error) {
	args := m.Called(ctx, id)
	if call, ok := args.Get(0).(*assignment.CallRecord); ok {
		return call, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CallRepository) ListUnassigned(ctx context.Context, limit int) ([]assignment.CallRecord, error) {
	args := m.Called(ctx, limit)
	if calls, ok := args.Get(0).([]assignment.CallRecord); ok {
		return calls, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CallRepository) Claim(ctx context.Context, callID, assignmentID string) (bool, error) {
	args := m.Called(ctx, callID, assignmentID)
	return args.Bool(0), args.Error(1)
}

func (m *CallRepository) SetAssignment(ctx context.Context, callID, assignmentID string) error {
	args := m.Called(ctx, callID, assignmentID)
	return args.Error(0)
}

// ReviewerRepository is a mock for repository.ReviewerRepository.
type ReviewerRepository struct {
	mock.Mock
}

func (m *ReviewerRepository) Upsert(ctx context.Context, r *assignment.Reviewer) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReviewerRepository) Get(ctx context.Context, id string) (*assignment.Reviewer, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*assignment.Reviewer); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReviewerRepository) ListActive(ctx context.Context, teamID *string) ([]assignment.Reviewer, error) {
	args := m.Called(ctx, teamID)
	if reviewers, ok := args.Get(0).([]assignment.Reviewer); ok {
		return reviewers, args.Error(1)
	}
	return nil, args.Error(1)
}

// AssignmentRepository is a mock for repository.AssignmentRepository.
type AssignmentRepository struct {
	mock.Mock
}

func (m *AssignmentRepository) Claim(ctx context.Context, a *assignment.Assignment) (assignment.ClaimOutcome, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(assignment.ClaimOutcome), args.Error(1)
}

func (m *AssignmentRepository) Get(ctx context.Context, id string) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*assignment.Assignment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssignmentRepository) SetStatus(ctx context.Context, id string, status assignment.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *AssignmentRepository) ListByReviewer(ctx context.Context, reviewerID string, status *assignment.Status) ([]assignment.QueueItem, error) {
	args := m.Called(ctx, reviewerID, status)
	if items, ok := args.Get(0).([]assignment.QueueItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// ResponseRepository is a mock for repository.ResponseRepository.
type ResponseRepository struct {
	mock.Mock
}

func (m *ResponseRepository) GetByAssignment(ctx context.Context, assignmentID string) (*review.Response, error) {
	args := m.Called(ctx, assignmentID)
	if resp, ok := args.Get(0).(*review.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ResponseRepository) Upsert(ctx context.Context, resp *review.Response) error {
	args := m.Called(ctx, resp)
	return args.Error(0)
}

// SchemaRepository is a mock for repository.SchemaRepository.
type SchemaRepository struct {
	mock.Mock
}

func (m *SchemaRepository) Get(ctx context.Context, id string) (*schema.Schema, error) {
	args := m.Called(ctx, id)
	if sc, ok := args.Get(0).(*schema.Schema); ok {
		return sc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SchemaRepository) Save(ctx context.Context, sc *schema.Schema) error {
	args := m.Called(ctx, sc)
	return args.Error(0)
}

func (m *SchemaRepository) EnsureDefault(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	args := m.Called(ctx, limit)
	if entries, ok := args.Get(0).([]activity.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

// StatsRepository is a mock for repository.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) CountByReviewer(ctx context.Context, reviewerID string, status assignment.Status) (int, error) {
	args := m.Called(ctx, reviewerID, status)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountCompletedSince(ctx context.Context, reviewerID string, since time.Time) (int, error) {
	args := m.Called(ctx, reviewerID, since)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountByStatus(ctx context.Context, status assignment.Status) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) AverageScore(ctx context.Context, reviewerID string) (float64, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).(float64), args.Error(1)
}
