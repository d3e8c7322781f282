package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/auditline/auditline/internal/domain/schema"
	"github.com/auditline/auditline/internal/repository"
)

// SchemaRepository implements review.SchemaStore for SQLite
type SchemaRepository struct {
	db *DB
}

// NewSchemaRepository creates a new SchemaRepository
func NewSchemaRepository(db *DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// Get retrieves a form schema by ID
func (r *SchemaRepository) Get(ctx context.Context, id string) (*schema.Schema, error) {
	query := `
		SELECT id, name, description, fields, total_points, passing_score,
		       is_active, created_at, updated_at
		FROM audit_schemas
		WHERE id = ?
	`

	var sc schema.Schema
	var fields string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sc.ID,
		&sc.Name,
		&sc.Description,
		&fields,
		&sc.TotalPoints,
		&sc.PassingScore,
		&sc.IsActive,
		&sc.CreatedAt,
		&sc.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schema: %w", err)
	}

	if err := unmarshalInto(fields, &sc.Fields); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Save validates and stores a form schema, overwriting any prior version
func (r *SchemaRepository) Save(ctx context.Context, sc *schema.Schema) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	fields, err := json.Marshal(sc.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode schema fields: %w", err)
	}

	query := `
		INSERT INTO audit_schemas (
			id, name, description, fields, total_points, passing_score,
			is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			fields = excluded.fields,
			total_points = excluded.total_points,
			passing_score = excluded.passing_score,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		sc.ID,
		sc.Name,
		sc.Description,
		string(fields),
		sc.TotalPoints,
		sc.PassingScore,
		sc.IsActive,
		sc.CreatedAt,
		sc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save schema: %w", err)
	}
	return nil
}

// EnsureDefault installs the built-in default schema under id when no
// schema exists there yet.
func (r *SchemaRepository) EnsureDefault(ctx context.Context, id string) error {
	_, err := r.Get(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	sc := schema.Default(id)
	now := time.Now()
	sc.CreatedAt = now
	sc.UpdatedAt = now
	return r.Save(ctx, sc)
}
