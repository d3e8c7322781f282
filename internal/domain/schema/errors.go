package schema

import "errors"

var (
	// ErrSchemaNotFound indicates no schema exists under the requested id.
	ErrSchemaNotFound = errors.New("audit form schema not found")
	// ErrInvalidSchema indicates a schema definition failed validation.
	ErrInvalidSchema = errors.New("invalid audit form schema")
)
