package assignment

import "time"

// Status represents the workflow state of an assignment.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFlagged    Status = "flagged"
	StatusDraft      Status = "draft"
)

// Valid reports whether s is a recognized assignment status. The
// in_progress and flagged states are representable and stored-valid but no
// core operation currently transitions an assignment into them.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFlagged, StatusDraft:
		return true
	}
	return false
}

// CallSource identifies where a call record was imported from.
type CallSource string

const (
	SourceCRM    CallSource = "crm"
	SourceS3     CallSource = "aws_s3"
	SourceManual CallSource = "manual"
)

// CallRecord is an external reference to a recorded interaction awaiting
// review. The core only reads it, apart from stamping the claiming
// assignment id.
type CallRecord struct {
	ID              string         `json:"id"`
	ExternalID      string         `json:"call_id"`
	AgentID         string         `json:"agent_id"`
	CustomerID      *string        `json:"customer_id,omitempty"`
	DateTime        time.Time      `json:"date_time"`
	DurationSeconds *int           `json:"duration_seconds,omitempty"`
	CampaignID      *string        `json:"campaign_id,omitempty"`
	Source          CallSource     `json:"source"`
	TranscriptURL   *string        `json:"transcript_url,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	ImportedAt      time.Time      `json:"imported_at"`
	RetentionUntil  *time.Time     `json:"retention_until,omitempty"`
	AssignmentID    *string        `json:"assignment_id,omitempty"`
}

// Reviewer is a member of the reviewer pool. Read-only input to the queue
// manager.
type Reviewer struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	TeamID *string `json:"team_id,omitempty"`
	Active bool    `json:"active"`
}

// Assignment binds one call record to one reviewer for evaluation.
// A nil AssignedBy means the assignment was created by the auto-assign run.
type Assignment struct {
	ID         string     `json:"id"`
	CallID     string     `json:"call_record_id"`
	ReviewerID string     `json:"reviewer_id"`
	AssignedBy *string    `json:"assigned_by,omitempty"`
	AssignedAt time.Time  `json:"assigned_at"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Status     Status     `json:"status"`
	Priority   int        `json:"priority"`
}

// QueueItem is an assignment joined with its call record for queue views.
type QueueItem struct {
	Assignment Assignment `json:"assignment"`
	Call       CallRecord `json:"call"`
}

// ClaimOutcome reports whether an assignment claim created a new row or
// landed on an existing one. AssignmentID is always the surviving id for
// the call record.
type ClaimOutcome struct {
	AssignmentID string
	Created      bool
}
