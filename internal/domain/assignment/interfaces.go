package assignment

import (
	"context"

	"github.com/auditline/auditline/internal/domain/activity"
)

// CallStore provides persistence for imported call records.
type CallStore interface {
	Create(ctx context.Context, call *CallRecord) error
	Get(ctx context.Context, id string) (*CallRecord, error)
	ListUnassigned(ctx context.Context, limit int) ([]CallRecord, error)
	// Claim stamps assignmentID onto an unclaimed call record. It reports
	// false when another assignment already claimed the record.
	Claim(ctx context.Context, callID, assignmentID string) (bool, error)
	SetAssignment(ctx context.Context, callID, assignmentID string) error
}

// ReviewerDirectory reads the reviewer pool.
type ReviewerDirectory interface {
	ListActive(ctx context.Context, teamID *string) ([]Reviewer, error)
}

// AssignmentStore provides persistence for assignments.
type AssignmentStore interface {
	// Claim atomically inserts-or-updates the assignment keyed on its call
	// record id, preserving the one-assignment-per-call invariant.
	Claim(ctx context.Context, a *Assignment) (ClaimOutcome, error)
	Get(ctx context.Context, id string) (*Assignment, error)
	SetStatus(ctx context.Context, id string, status Status) error
	ListByReviewer(ctx context.Context, reviewerID string, status *Status) ([]QueueItem, error)
}

// ActivityLog records workflow events.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
