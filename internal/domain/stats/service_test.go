package stats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/domain/stats"
	"github.com/auditline/auditline/internal/repository/mocks"
)

func TestReviewerStats(t *testing.T) {
	ctx := context.Background()
	store := &mocks.StatsRepository{}

	store.On("CountByReviewer", ctx, "rev1", assignment.StatusPending).Return(4, nil)
	store.On("CountCompletedSince", ctx, "rev1", mock.Anything).Return(3, nil)
	store.On("CountByReviewer", ctx, "rev1", assignment.StatusCompleted).Return(27, nil)
	store.On("AverageScore", ctx, "rev1").Return(86.333, nil)

	svc := stats.NewService(store, 10, nil)
	got, err := svc.ReviewerStats(ctx, "rev1")
	require.NoError(t, err)

	require.Equal(t, 4, got.PendingAudits)
	require.Equal(t, 3, got.CompletedToday)
	require.Equal(t, 27, got.CompletedTotal)
	require.Equal(t, 10, got.DailyQuota)
	require.Equal(t, 30.0, got.CompletionPercentage)
	require.Equal(t, 86.33, got.AverageScore)
}

func TestReviewerStats_QuotaDefaulted(t *testing.T) {
	ctx := context.Background()
	store := &mocks.StatsRepository{}

	store.On("CountByReviewer", ctx, "rev1", mock.Anything).Return(0, nil)
	store.On("CountCompletedSince", ctx, "rev1", mock.Anything).Return(5, nil)
	store.On("AverageScore", ctx, "rev1").Return(0.0, nil)

	svc := stats.NewService(store, 0, nil)
	got, err := svc.ReviewerStats(ctx, "rev1")
	require.NoError(t, err)
	require.Equal(t, 10, got.DailyQuota)
	require.Equal(t, 50.0, got.CompletionPercentage)
}

func TestTeamStats(t *testing.T) {
	ctx := context.Background()
	store := &mocks.StatsRepository{}

	store.On("CountAll", ctx).Return(40, nil)
	store.On("CountByStatus", ctx, assignment.StatusCompleted).Return(30, nil)
	store.On("CountByStatus", ctx, assignment.StatusFlagged).Return(2, nil)
	store.On("AverageScore", ctx, "").Return(81.456, nil)

	svc := stats.NewService(store, 10, nil)
	got, err := svc.TeamStats(ctx)
	require.NoError(t, err)

	require.Equal(t, 40, got.TotalAudits)
	require.Equal(t, 81.46, got.AverageScore)
	require.Equal(t, 75.0, got.ComplianceRate)
	require.Equal(t, 2, got.FlaggedAudits)
}

func TestTeamStats_EmptyPool(t *testing.T) {
	ctx := context.Background()
	store := &mocks.StatsRepository{}

	store.On("CountAll", ctx).Return(0, nil)
	store.On("CountByStatus", ctx, mock.Anything).Return(0, nil)
	store.On("AverageScore", ctx, "").Return(0.0, nil)

	svc := stats.NewService(store, 10, nil)
	got, err := svc.TeamStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.0, got.ComplianceRate)
	require.Equal(t, 0.0, got.AverageScore)
}
