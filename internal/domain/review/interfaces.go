package review

import (
	"context"

	"github.com/auditline/auditline/internal/domain/activity"
	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/domain/schema"
)

// ResponseStore provides persistence for audit responses.
type ResponseStore interface {
	GetByAssignment(ctx context.Context, assignmentID string) (*Response, error)
	Upsert(ctx context.Context, resp *Response) error
}

// AssignmentStore resolves and finalizes owning assignments.
type AssignmentStore interface {
	Get(ctx context.Context, id string) (*assignment.Assignment, error)
	SetStatus(ctx context.Context, id string, status assignment.Status) error
}

// SchemaStore looks up audit form schemas.
type SchemaStore interface {
	Get(ctx context.Context, id string) (*schema.Schema, error)
}

// ActivityLog records workflow events.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
