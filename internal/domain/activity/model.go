package activity

import "time"

// Type represents the type of workflow event
type Type string

const (
	TypeCallImported         Type = "call_imported"
	TypeAssignmentCreated    Type = "assignment_created"
	TypeAssignmentReassigned Type = "assignment_reassigned"
	TypeDraftSaved           Type = "draft_saved"
	TypeAuditSubmitted       Type = "audit_submitted"
)

// Entry represents an event in the workflow activity log
type Entry struct {
	ID           int64     `json:"id"`
	AssignmentID *string   `json:"assignment_id,omitempty"`
	CallID       *string   `json:"call_record_id,omitempty"`
	ReviewerID   *string   `json:"reviewer_id,omitempty"`
	EventType    Type      `json:"type"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}
