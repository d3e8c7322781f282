package activity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/auditline/auditline/internal/domain/activity"
	"github.com/auditline/auditline/internal/repository/mocks"
)

func TestLog_StampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}

	repo.On("Log", ctx, mock.Anything).Run(func(args mock.Arguments) {
		entry := args.Get(1).(*activity.Entry)
		require.False(t, entry.CreatedAt.IsZero())
	}).Return(nil)

	svc := activity.NewService(repo, nil)
	err := svc.Log(ctx, &activity.Entry{
		EventType: activity.TypeCallImported,
		Summary:   "imported call ext1",
	})
	require.NoError(t, err)
}

func TestLog_NilEntry(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.Log(context.Background(), nil), activity.ErrInvalidInput)
}

func TestRecent_DefaultsLimit(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}

	repo.On("Recent", ctx, 50).Return([]activity.Entry{{ID: 1}}, nil)

	svc := activity.NewService(repo, nil)
	entries, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}
