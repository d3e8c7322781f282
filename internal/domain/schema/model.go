package schema

import "time"

// FieldType identifies how a field's raw response value is interpreted.
type FieldType string

const (
	FieldNumber   FieldType = "number"
	FieldRating   FieldType = "rating"
	FieldCheckbox FieldType = "checkbox"
	FieldSelect   FieldType = "select"
	FieldText     FieldType = "text"
)

// DefaultScale is applied to number and rating fields without an explicit max_value.
const DefaultScale = 10.0

// Field defines one scorable entry in an audit form.
type Field struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Options  []string  `json:"options,omitempty"`
	MinValue *float64  `json:"min_value,omitempty"`
	MaxValue *float64  `json:"max_value,omitempty"`
	Weight   *float64  `json:"weight,omitempty"`
	Critical bool      `json:"critical,omitempty"`
}

// EffectiveWeight returns the field's scoring weight, defaulting to 1.0.
func (f Field) EffectiveWeight() float64 {
	if f.Weight != nil {
		return *f.Weight
	}
	return 1.0
}

// Scale returns the denominator used to normalize a raw value: max_value
// (default 10) for number and rating fields, 1 for everything else.
func (f Field) Scale() float64 {
	switch f.Type {
	case FieldNumber, FieldRating:
		if f.MaxValue != nil && *f.MaxValue > 0 {
			return *f.MaxValue
		}
		return DefaultScale
	default:
		return 1.0
	}
}

// Min returns the minimum acceptable value for critical number/rating checks.
func (f Field) Min() float64 {
	if f.MinValue != nil {
		return *f.MinValue
	}
	return 0
}

// Schema is a versioned audit form definition.
type Schema struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Fields       []Field   `json:"fields"`
	TotalPoints  float64   `json:"total_points"`
	PassingScore float64   `json:"passing_score"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FieldByID looks up a field definition by its id.
func (s *Schema) FieldByID(id string) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
