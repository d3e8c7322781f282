package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/repository"
)

func TestCallRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCallRepository(db)

	duration := 340
	customer := "cust-9"
	call := &assignment.CallRecord{
		ID:              "c1",
		ExternalID:      "crm-1001",
		AgentID:         "agent1",
		CustomerID:      &customer,
		DateTime:        time.Now().Add(-time.Hour),
		DurationSeconds: &duration,
		Source:          assignment.SourceCRM,
		Metadata:        map[string]any{"queue": "billing"},
		ImportedAt:      time.Now(),
	}

	err := repo.Create(ctx, call)
	require.NoError(t, err)

	loaded, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "crm-1001", loaded.ExternalID)
	require.Equal(t, "agent1", loaded.AgentID)
	require.Equal(t, &customer, loaded.CustomerID)
	require.Equal(t, &duration, loaded.DurationSeconds)
	require.Equal(t, "billing", loaded.Metadata["queue"])
	require.Nil(t, loaded.AssignmentID)
}

func TestCallRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCallRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCallRepository_ListUnassignedOldestFirst(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCallRepository(db)

	base := time.Now()
	for i, id := range []string{"c1", "c2", "c3"} {
		_, err := db.Exec(
			`INSERT INTO call_records (id, call_id, agent_id, date_time, source, imported_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, "ext-"+id, "agent1", base, "crm", base.Add(time.Duration(-i)*time.Minute))
		require.NoError(t, err)
	}

	calls, err := repo.ListUnassigned(ctx, 10)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	require.Equal(t, "c3", calls[0].ID)
	require.Equal(t, "c1", calls[2].ID)

	// Limit is honored
	calls, err = repo.ListUnassigned(ctx, 2)
	require.NoError(t, err)
	require.Len(t, calls, 2)
}

func TestCallRepository_ClaimOnlyOnce(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCallRepository(db)
	insertCall(t, db, "c1")

	claimed, err := repo.Claim(ctx, "c1", "a1")
	require.NoError(t, err)
	require.True(t, claimed)

	// Second claim loses
	claimed, err = repo.Claim(ctx, "c1", "a2")
	require.NoError(t, err)
	require.False(t, claimed)

	loaded, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, loaded.AssignmentID)
	require.Equal(t, "a1", *loaded.AssignmentID)

	// The claimed record no longer shows up as unassigned
	calls, err := repo.ListUnassigned(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, calls)
}

func TestCallRepository_SetAssignment(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCallRepository(db)
	insertCall(t, db, "c1")

	require.NoError(t, repo.SetAssignment(ctx, "c1", "a1"))
	// Unconditional write overwrites a prior claim
	require.NoError(t, repo.SetAssignment(ctx, "c1", "a2"))

	loaded, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "a2", *loaded.AssignmentID)

	require.ErrorIs(t, repo.SetAssignment(ctx, "missing", "a1"), repository.ErrNotFound)
}
