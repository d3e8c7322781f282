package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/auditline/auditline/internal/domain/activity"
)

func TestActivityRepository_LogRecent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	callID := "c1"
	for i := 0; i < 3; i++ {
		entry := &activity.Entry{
			CallID:    &callID,
			EventType: activity.TypeCallImported,
			Summary:   "imported a call",
			CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Log(ctx, entry))
		require.NotZero(t, entry.ID)
	}

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first
	require.Greater(t, entries[0].ID, entries[1].ID)
	require.Equal(t, activity.TypeCallImported, entries[0].EventType)
	require.Equal(t, &callID, entries[0].CallID)
	require.Nil(t, entries[0].AssignmentID)

	entries, err = repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
