package review

import (
	"time"

	"github.com/auditline/auditline/internal/domain/scoring"
)

// Status represents the lifecycle state of an audit response.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// Highlight is a reviewer-marked segment of the call transcript.
type Highlight struct {
	ID           string    `json:"id"`
	SegmentIndex int       `json:"segment_index"`
	StartChar    int       `json:"start_char"`
	EndChar      int       `json:"end_char"`
	Text         string    `json:"text"`
	Note         *string   `json:"note,omitempty"`
	FlagType     *string   `json:"flag_type,omitempty"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// Response is a reviewer's answer set for one assignment. It is created
// lazily on the first draft save and finalized exactly once on submit,
// which is the only writer of OverallScore, Compliance and SubmittedAt.
type Response struct {
	ID           string          `json:"id"`
	AssignmentID string          `json:"assignment_id"`
	SchemaID     string          `json:"form_schema_id"`
	Responses    map[string]any  `json:"responses"`
	Highlights   []Highlight     `json:"highlights,omitempty"`
	OverallScore float64         `json:"overall_score"`
	Compliance   scoring.Verdict `json:"compliance_result,omitempty"`
	Comments     *string         `json:"comments,omitempty"`
	Status       Status          `json:"status"`
	StartedAt    time.Time       `json:"started_at"`
	SubmittedAt  *time.Time      `json:"submitted_at,omitempty"`
}
