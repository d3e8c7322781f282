package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/repository"
)

// CallRepository implements assignment.CallStore for SQLite
type CallRepository struct {
	db *DB
}

// NewCallRepository creates a new CallRepository
func NewCallRepository(db *DB) *CallRepository {
	return &CallRepository{db: db}
}

// Create inserts an imported call record
func (r *CallRepository) Create(ctx context.Context, call *assignment.CallRecord) error {
	metadata, err := marshalMetadata(call.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO call_records (
			id, call_id, agent_id, customer_id, date_time, duration_seconds,
			campaign_id, source, transcript_url, metadata, imported_at,
			retention_until, assignment_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		call.ID,
		call.ExternalID,
		call.AgentID,
		call.CustomerID,
		call.DateTime,
		call.DurationSeconds,
		call.CampaignID,
		call.Source,
		call.TranscriptURL,
		metadata,
		call.ImportedAt,
		call.RetentionUntil,
		call.AssignmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to create call record: %w", err)
	}
	return nil
}

// Get retrieves a call record by ID
func (r *CallRepository) Get(ctx context.Context, id string) (*assignment.CallRecord, error) {
	query := `
		SELECT id, call_id, agent_id, customer_id, date_time, duration_seconds,
		       campaign_id, source, transcript_url, metadata, imported_at,
		       retention_until, assignment_id
		FROM call_records
		WHERE id = ?
	`

	call, err := scanCall(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get call record: %w", err)
	}
	return call, nil
}

// ListUnassigned returns call records without an assignment, oldest first
func (r *CallRepository) ListUnassigned(ctx context.Context, limit int) ([]assignment.CallRecord, error) {
	query := `
		SELECT id, call_id, agent_id, customer_id, date_time, duration_seconds,
		       campaign_id, source, transcript_url, metadata, imported_at,
		       retention_until, assignment_id
		FROM call_records
		WHERE assignment_id IS NULL
		ORDER BY imported_at ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned calls: %w", err)
	}
	defer rows.Close()

	var calls []assignment.CallRecord
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call record: %w", err)
		}
		calls = append(calls, *call)
	}
	return calls, rows.Err()
}

// Claim stamps assignmentID onto the record only if it is still unclaimed
func (r *CallRepository) Claim(ctx context.Context, callID, assignmentID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE call_records SET assignment_id = ? WHERE id = ? AND assignment_id IS NULL`,
		assignmentID, callID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim call record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	return affected > 0, nil
}

// SetAssignment stamps assignmentID onto the record unconditionally
func (r *CallRepository) SetAssignment(ctx context.Context, callID, assignmentID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE call_records SET assignment_id = ? WHERE id = ?`,
		assignmentID, callID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark call assigned: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCall(row rowScanner) (*assignment.CallRecord, error) {
	var call assignment.CallRecord
	var metadata *string
	err := row.Scan(
		&call.ID,
		&call.ExternalID,
		&call.AgentID,
		&call.CustomerID,
		&call.DateTime,
		&call.DurationSeconds,
		&call.CampaignID,
		&call.Source,
		&call.TranscriptURL,
		&metadata,
		&call.ImportedAt,
		&call.RetentionUntil,
		&call.AssignmentID,
	)
	if err != nil {
		return nil, err
	}
	if metadata != nil && *metadata != "" {
		if err := json.Unmarshal([]byte(*metadata), &call.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode call metadata: %w", err)
		}
	}
	return &call, nil
}

func marshalMetadata(metadata map[string]any) (*string, error) {
	if metadata == nil {
		return nil, nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode call metadata: %w", err)
	}
	s := string(data)
	return &s, nil
}
