package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/auditline/auditline/internal/domain/activity"
	"github.com/auditline/auditline/internal/repository"
)

const (
	defaultDueWindow = 48 * time.Hour
	defaultBatchSize = 100
)

// Options tune the queue manager.
type Options struct {
	// DueWindow is added to the assignment time to produce the due date.
	DueWindow time.Duration
	// BatchSize caps how many unassigned calls one auto-assign run picks up.
	BatchSize int
}

// Service distributes call records to reviewers and manages the
// assignment queue.
type Service struct {
	calls       CallStore
	reviewers   ReviewerDirectory
	assignments AssignmentStore
	activities  ActivityLog
	dueWindow   time.Duration
	batchSize   int
	logger      *slog.Logger

	// assignMu single-flights auto-assign runs so a concurrent or
	// re-entrant invocation cannot walk the same unassigned set.
	assignMu sync.Mutex
}

// NewService creates a new assignment service.
func NewService(
	calls CallStore,
	reviewers ReviewerDirectory,
	assignments AssignmentStore,
	activities ActivityLog,
	opts Options,
	logger *slog.Logger,
) *Service {
	if opts.DueWindow <= 0 {
		opts.DueWindow = defaultDueWindow
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		calls:       calls,
		reviewers:   reviewers,
		assignments: assignments,
		activities:  activities,
		dueWindow:   opts.DueWindow,
		batchSize:   opts.BatchSize,
		logger:      logger,
	}
}

// ImportCallRequest describes an externally imported call record.
type ImportCallRequest struct {
	ExternalID      string
	AgentID         string
	CustomerID      *string
	DateTime        time.Time
	DurationSeconds *int
	CampaignID      *string
	Source          CallSource
	TranscriptURL   *string
	Metadata        map[string]any
	RetentionUntil  *time.Time
}

// ImportCall creates a call record from imported data and returns its id.
func (s *Service) ImportCall(ctx context.Context, req ImportCallRequest) (string, error) {
	if req.ExternalID == "" || req.AgentID == "" || req.DateTime.IsZero() {
		return "", ErrInvalidInput
	}
	source := req.Source
	if source == "" {
		source = SourceCRM
	}

	call := &CallRecord{
		ID:              uuid.NewString(),
		ExternalID:      req.ExternalID,
		AgentID:         req.AgentID,
		CustomerID:      req.CustomerID,
		DateTime:        req.DateTime,
		DurationSeconds: req.DurationSeconds,
		CampaignID:      req.CampaignID,
		Source:          source,
		TranscriptURL:   req.TranscriptURL,
		Metadata:        req.Metadata,
		ImportedAt:      time.Now(),
		RetentionUntil:  req.RetentionUntil,
	}

	if err := s.calls.Create(ctx, call); err != nil {
		return "", fmt.Errorf("creating call record: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			CallID:    &call.ID,
			EventType: activity.TypeCallImported,
			Summary:   fmt.Sprintf("imported call %s for agent %s", call.ExternalID, call.AgentID),
		})
	}

	return call.ID, nil
}

// AutoAssign distributes unassigned call records across active reviewers in
// round-robin order and returns the number of assignments created. Zero
// active reviewers is not an error: the run logs a warning and creates
// nothing, so the caller can retry later.
func (s *Service) AutoAssign(ctx context.Context, teamID *string) (int, error) {
	s.assignMu.Lock()
	defer s.assignMu.Unlock()

	calls, err := s.calls.ListUnassigned(ctx, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("listing unassigned calls: %w", err)
	}
	if len(calls) == 0 {
		return 0, nil
	}

	reviewers, err := s.reviewers.ListActive(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("listing active reviewers: %w", err)
	}
	if len(reviewers) == 0 {
		s.logger.Warn("no active reviewers found for assignment")
		return 0, nil
	}

	created := 0
	for i, call := range calls {
		reviewer := reviewers[i%len(reviewers)]
		now := time.Now()
		due := now.Add(s.dueWindow)

		a := &Assignment{
			ID:         uuid.NewString(),
			CallID:     call.ID,
			ReviewerID: reviewer.ID,
			AssignedAt: now,
			DueDate:    &due,
			Status:     StatusPending,
		}

		claimed, err := s.calls.Claim(ctx, call.ID, a.ID)
		if err != nil {
			return created, fmt.Errorf("claiming call %s: %w", call.ID, err)
		}
		if !claimed {
			// Another actor assigned this record between the listing and
			// the claim.
			continue
		}

		if _, err := s.assignments.Claim(ctx, a); err != nil {
			return created, fmt.Errorf("creating assignment for call %s: %w", call.ID, err)
		}
		created++

		if s.activities != nil {
			_ = s.activities.Log(ctx, &activity.Entry{
				AssignmentID: &a.ID,
				CallID:       &a.CallID,
				ReviewerID:   &a.ReviewerID,
				EventType:    activity.TypeAssignmentCreated,
				Summary:      fmt.Sprintf("auto-assigned call %s to reviewer %s", call.ID, reviewer.ID),
			})
		}
	}

	s.logger.Info("auto-assigned calls", "created", created, "reviewers", len(reviewers))
	return created, nil
}

// AssignRequest describes a manual assignment or reassignment.
type AssignRequest struct {
	CallID     string
	ReviewerID string
	AssignedBy string
}

// Assign binds a call record to a specific reviewer. If the call is already
// assigned the existing assignment is updated in place (new reviewer, new
// assigned_by, status reset to pending) and its id is returned; the
// one-assignment-per-call invariant holds through the store's atomic claim.
func (s *Service) Assign(ctx context.Context, req AssignRequest) (string, error) {
	if req.CallID == "" || req.ReviewerID == "" {
		return "", ErrInvalidInput
	}

	if _, err := s.calls.Get(ctx, req.CallID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrCallNotFound
		}
		return "", fmt.Errorf("loading call record: %w", err)
	}

	now := time.Now()
	due := now.Add(s.dueWindow)
	var assignedBy *string
	if req.AssignedBy != "" {
		assignedBy = &req.AssignedBy
	}

	a := &Assignment{
		ID:         uuid.NewString(),
		CallID:     req.CallID,
		ReviewerID: req.ReviewerID,
		AssignedBy: assignedBy,
		AssignedAt: now,
		DueDate:    &due,
		Status:     StatusPending,
	}

	outcome, err := s.assignments.Claim(ctx, a)
	if err != nil {
		return "", fmt.Errorf("claiming assignment: %w", err)
	}

	if outcome.Created {
		if err := s.calls.SetAssignment(ctx, req.CallID, outcome.AssignmentID); err != nil {
			return "", fmt.Errorf("marking call assigned: %w", err)
		}
	}

	if s.activities != nil {
		eventType := activity.TypeAssignmentCreated
		summary := fmt.Sprintf("assigned call %s to reviewer %s", req.CallID, req.ReviewerID)
		if !outcome.Created {
			eventType = activity.TypeAssignmentReassigned
			summary = fmt.Sprintf("reassigned call %s to reviewer %s", req.CallID, req.ReviewerID)
		}
		_ = s.activities.Log(ctx, &activity.Entry{
			AssignmentID: &outcome.AssignmentID,
			CallID:       &req.CallID,
			ReviewerID:   &req.ReviewerID,
			EventType:    eventType,
			Summary:      summary,
		})
	}

	return outcome.AssignmentID, nil
}

// Queue returns a reviewer's assignments joined with their call records,
// newest-assigned-first, optionally filtered by status.
func (s *Service) Queue(ctx context.Context, reviewerID string, status *Status) ([]QueueItem, error) {
	if reviewerID == "" {
		return nil, ErrInvalidInput
	}
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}
	items, err := s.assignments.ListByReviewer(ctx, reviewerID, status)
	if err != nil {
		return nil, fmt.Errorf("listing reviewer queue: %w", err)
	}
	return items, nil
}

// Get returns an assignment by id.
func (s *Service) Get(ctx context.Context, id string) (*Assignment, error) {
	a, err := s.assignments.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("getting assignment: %w", err)
	}
	return a, nil
}
