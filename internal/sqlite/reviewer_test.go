package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/repository"
)

func TestReviewerRepository_UpsertGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewReviewerRepository(db)

	team := "team-a"
	err := repo.Upsert(ctx, &assignment.Reviewer{ID: "rev1", Name: "Alice", TeamID: &team, Active: true})
	require.NoError(t, err)

	loaded, err := repo.Get(ctx, "rev1")
	require.NoError(t, err)
	require.Equal(t, "Alice", loaded.Name)
	require.Equal(t, &team, loaded.TeamID)
	require.True(t, loaded.Active)

	// Upsert updates in place
	err = repo.Upsert(ctx, &assignment.Reviewer{ID: "rev1", Name: "Alice B", Active: false})
	require.NoError(t, err)

	loaded, err = repo.Get(ctx, "rev1")
	require.NoError(t, err)
	require.Equal(t, "Alice B", loaded.Name)
	require.Nil(t, loaded.TeamID)
	require.False(t, loaded.Active)
}

func TestReviewerRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewReviewerRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReviewerRepository_ListActive(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewReviewerRepository(db)

	teamA := "team-a"
	teamB := "team-b"
	insertReviewer(t, db, "rev2", &teamA, true)
	insertReviewer(t, db, "rev1", &teamA, true)
	insertReviewer(t, db, "rev3", &teamB, true)
	insertReviewer(t, db, "rev4", &teamA, false)

	// Stable id order, inactive excluded
	reviewers, err := repo.ListActive(ctx, nil)
	require.NoError(t, err)
	require.Len(t, reviewers, 3)
	require.Equal(t, "rev1", reviewers[0].ID)
	require.Equal(t, "rev2", reviewers[1].ID)
	require.Equal(t, "rev3", reviewers[2].ID)

	// Team filter
	reviewers, err = repo.ListActive(ctx, &teamB)
	require.NoError(t, err)
	require.Len(t, reviewers, 1)
	require.Equal(t, "rev3", reviewers[0].ID)
}
