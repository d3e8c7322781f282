package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/domain/review"
)

// seedCompletedAudit creates a call, assignment and submitted response
func seedCompletedAudit(t *testing.T, db *DB, callID, assignmentID, reviewerID string, score float64, submittedAt time.Time) {
	t.Helper()
	insertCall(t, db, callID)
	createAssignment(t, db, assignmentID, callID, reviewerID)

	assignments := NewAssignmentRepository(db)
	require.NoError(t, assignments.SetStatus(context.Background(), assignmentID, assignment.StatusCompleted))

	responses := NewResponseRepository(db)
	require.NoError(t, responses.Upsert(context.Background(), &review.Response{
		ID:           "resp-" + assignmentID,
		AssignmentID: assignmentID,
		SchemaID:     "default",
		Responses:    map[string]any{},
		OverallScore: score,
		Status:       review.StatusCompleted,
		StartedAt:    submittedAt.Add(-time.Hour),
		SubmittedAt:  &submittedAt,
	}))
}

func TestStatsRepository_Counts(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewStatsRepository(db)
	insertReviewer(t, db, "rev1", nil, true)
	insertReviewer(t, db, "rev2", nil, true)

	now := time.Now()
	seedCompletedAudit(t, db, "c1", "a1", "rev1", 80, now)
	seedCompletedAudit(t, db, "c2", "a2", "rev1", 90, now.Add(-48*time.Hour))
	seedCompletedAudit(t, db, "c3", "a3", "rev2", 60, now)

	insertCall(t, db, "c4")
	createAssignment(t, db, "a4", "c4", "rev1")

	count, err := repo.CountByReviewer(ctx, "rev1", assignment.StatusPending)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = repo.CountByReviewer(ctx, "rev1", assignment.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = repo.CountCompletedSince(ctx, "rev1", now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = repo.CountAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, count)

	count, err = repo.CountByStatus(ctx, assignment.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = repo.CountByStatus(ctx, assignment.StatusFlagged)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestStatsRepository_AverageScore(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewStatsRepository(db)
	insertReviewer(t, db, "rev1", nil, true)
	insertReviewer(t, db, "rev2", nil, true)

	now := time.Now()
	seedCompletedAudit(t, db, "c1", "a1", "rev1", 80, now)
	seedCompletedAudit(t, db, "c2", "a2", "rev1", 90, now)
	seedCompletedAudit(t, db, "c3", "a3", "rev2", 60, now)

	avg, err := repo.AverageScore(ctx, "rev1")
	require.NoError(t, err)
	require.Equal(t, 85.0, avg)

	avg, err = repo.AverageScore(ctx, "")
	require.NoError(t, err)
	require.InDelta(t, 76.67, avg, 0.01)

	// No completed audits yields zero rather than NULL
	avg, err = repo.AverageScore(ctx, "ghost")
	require.NoError(t, err)
	require.Equal(t, 0.0, avg)
}
