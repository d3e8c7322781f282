package stats

import (
	"context"
	"time"

	"github.com/auditline/auditline/internal/domain/assignment"
)

// Store reads assignment and response aggregates.
type Store interface {
	CountByReviewer(ctx context.Context, reviewerID string, status assignment.Status) (int, error)
	CountCompletedSince(ctx context.Context, reviewerID string, since time.Time) (int, error)
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status assignment.Status) (int, error)
	// AverageScore averages submitted response scores; an empty reviewerID
	// spans the whole pool.
	AverageScore(ctx context.Context, reviewerID string) (float64, error)
}
