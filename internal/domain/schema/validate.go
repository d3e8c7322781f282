package schema

import "fmt"

var validTypes = map[FieldType]bool{
	FieldNumber:   true,
	FieldRating:   true,
	FieldCheckbox: true,
	FieldSelect:   true,
	FieldText:     true,
}

// Validate checks a schema definition before it is stored.
func (s *Schema) Validate() error {
	if s.ID == "" || s.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidSchema)
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", ErrInvalidSchema)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.ID == "" {
			return fmt.Errorf("%w: field id is required", ErrInvalidSchema)
		}
		if seen[f.ID] {
			return fmt.Errorf("%w: duplicate field id %q", ErrInvalidSchema, f.ID)
		}
		seen[f.ID] = true
		if !validTypes[f.Type] {
			return fmt.Errorf("%w: unknown field type %q", ErrInvalidSchema, f.Type)
		}
		if f.Weight != nil && *f.Weight < 0 {
			return fmt.Errorf("%w: field %q has negative weight", ErrInvalidSchema, f.ID)
		}
		if f.MinValue != nil && f.MaxValue != nil && *f.MinValue > *f.MaxValue {
			return fmt.Errorf("%w: field %q min_value exceeds max_value", ErrInvalidSchema, f.ID)
		}
	}
	if s.PassingScore < 0 || s.PassingScore > 100 {
		return fmt.Errorf("%w: passing_score must be within [0,100]", ErrInvalidSchema)
	}
	return nil
}
