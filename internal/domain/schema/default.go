package schema

import "time"

func ptr[T any](v T) *T { return &v }

// Default returns the built-in call audit form installed under the configured
// default schema id when no administrator-defined schema exists yet.
func Default(id string) *Schema {
	now := time.Now()
	return &Schema{
		ID:          id,
		Name:        "Standard Call Audit",
		Description: ptr("Baseline compliance form for recorded call reviews"),
		Fields: []Field{
			{
				ID:    "greeting_quality",
				Label: "Greeting and introduction quality",
				Type:  FieldRating,
			},
			{
				ID:       "script_adherence",
				Label:    "Agent followed the approved script",
				Type:     FieldCheckbox,
				Required: true,
				Critical: true,
			},
			{
				ID:       "disclosure_given",
				Label:    "Mandatory disclosure statement given",
				Type:     FieldCheckbox,
				Required: true,
				Critical: true,
			},
			{
				ID:       "communication",
				Label:    "Communication clarity",
				Type:     FieldNumber,
				MinValue: ptr(5.0),
				Weight:   ptr(2.0),
			},
			{
				ID:      "resolution",
				Label:   "Issue resolution outcome",
				Type:    FieldSelect,
				Options: []string{"yes", "partial", "no"},
			},
			{
				ID:    "notes",
				Label: "Reviewer notes",
				Type:  FieldText,
			},
		},
		TotalPoints:  100,
		PassingScore: 70,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
