// Package transport exposes the audit workflow to its HTTP-facing
// collaborator as a thin JSON layer. Routing and payload decoding live
// here; all policy lives in the domain services.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/auditline/auditline/internal/domain/activity"
	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/domain/review"
	"github.com/auditline/auditline/internal/domain/stats"
)

// AssignmentService drives call import and queue management.
type AssignmentService interface {
	ImportCall(ctx context.Context, req assignment.ImportCallRequest) (string, error)
	AutoAssign(ctx context.Context, teamID *string) (int, error)
	Assign(ctx context.Context, req assignment.AssignRequest) (string, error)
	Queue(ctx context.Context, reviewerID string, status *assignment.Status) ([]assignment.QueueItem, error)
}

// ReviewService drives the audit response lifecycle.
type ReviewService interface {
	SaveDraft(ctx context.Context, assignmentID string, responses map[string]any, highlights []review.Highlight) error
	Submit(ctx context.Context, assignmentID string, req review.SubmitRequest) (string, error)
	Response(ctx context.Context, assignmentID string) (*review.Response, error)
}

// StatsService computes dashboard aggregates.
type StatsService interface {
	ReviewerStats(ctx context.Context, reviewerID string) (*stats.ReviewerStats, error)
	TeamStats(ctx context.Context) (*stats.TeamStats, error)
}

// ActivityService reads the workflow event log.
type ActivityService interface {
	Recent(ctx context.Context, limit int) ([]activity.Entry, error)
}

// ReviewerRegistry manages the reviewer pool.
type ReviewerRegistry interface {
	Upsert(ctx context.Context, r *assignment.Reviewer) error
}

// Services bundles everything the router needs.
type Services struct {
	Assignments AssignmentService
	Reviews     ReviewService
	Stats       StatsService
	Activity    ActivityService
	Reviewers   ReviewerRegistry
}

// Server wires HTTP handlers.
type Server struct {
	svc Services
}

// NewRouter creates the HTTP router for the audit API.
func NewRouter(svc Services) *chi.Mux {
	r := chi.NewRouter()
	srv := &Server{svc: svc}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/calls", srv.handleImportCall)
		r.Post("/reviewers", srv.handleUpsertReviewer)
		r.Post("/assignments/auto", srv.handleAutoAssign)
		r.Post("/assignments", srv.handleAssign)
		r.Get("/queue/{reviewerID}", srv.handleQueue)
		r.Put("/audits/{assignmentID}/draft", srv.handleSaveDraft)
		r.Post("/audits/{assignmentID}/submit", srv.handleSubmit)
		r.Get("/audits/{assignmentID}", srv.handleGetResponse)
		r.Get("/dashboard/reviewers/{reviewerID}", srv.handleReviewerStats)
		r.Get("/dashboard/team", srv.handleTeamStats)
		r.Get("/activity", srv.handleActivity)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type importCallPayload struct {
	CallID          string         `json:"call_id"`
	AgentID         string         `json:"agent_id"`
	CustomerID      *string        `json:"customer_id"`
	DateTime        time.Time      `json:"date_time"`
	DurationSeconds *int           `json:"duration_seconds"`
	CampaignID      *string        `json:"campaign_id"`
	Source          string         `json:"source"`
	TranscriptURL   *string        `json:"transcript_url"`
	Metadata        map[string]any `json:"metadata"`
	RetentionUntil  *time.Time     `json:"retention_until"`
}

func (s *Server) handleImportCall(w http.ResponseWriter, r *http.Request) {
	var payload importCallPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	id, err := s.svc.Assignments.ImportCall(r.Context(), assignment.ImportCallRequest{
		ExternalID:      payload.CallID,
		AgentID:         payload.AgentID,
		CustomerID:      payload.CustomerID,
		DateTime:        payload.DateTime,
		DurationSeconds: payload.DurationSeconds,
		CampaignID:      payload.CampaignID,
		Source:          assignment.CallSource(payload.Source),
		TranscriptURL:   payload.TranscriptURL,
		Metadata:        payload.Metadata,
		RetentionUntil:  payload.RetentionUntil,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type reviewerPayload struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	TeamID *string `json:"team_id"`
	Active bool    `json:"active"`
}

func (s *Server) handleUpsertReviewer(w http.ResponseWriter, r *http.Request) {
	var payload reviewerPayload
	if !decodeJSON(w, r, &payload) {
		return
	}
	if payload.ID == "" || payload.Name == "" {
		writeError(w, http.StatusBadRequest, "id and name are required")
		return
	}

	rev := &assignment.Reviewer{
		ID:     payload.ID,
		Name:   payload.Name,
		TeamID: payload.TeamID,
		Active: payload.Active,
	}
	if err := s.svc.Reviewers.Upsert(r.Context(), rev); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": rev.ID})
}

type autoAssignPayload struct {
	TeamID *string `json:"team_id"`
}

func (s *Server) handleAutoAssign(w http.ResponseWriter, r *http.Request) {
	var payload autoAssignPayload
	if r.ContentLength != 0 && !decodeJSON(w, r, &payload) {
		return
	}

	created, err := s.svc.Assignments.AutoAssign(r.Context(), payload.TeamID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"assignments_created": created})
}

type assignPayload struct {
	CallRecordID string `json:"call_record_id"`
	ReviewerID   string `json:"reviewer_id"`
	AssignedBy   string `json:"assigned_by"`
}

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	var payload assignPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	id, err := s.svc.Assignments.Assign(r.Context(), assignment.AssignRequest{
		CallID:     payload.CallRecordID,
		ReviewerID: payload.ReviewerID,
		AssignedBy: payload.AssignedBy,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"assignment_id": id})
}

func (s *Server) handleQueue(w http.ResponseWriter, r *http.Request) {
	reviewerID := chi.URLParam(r, "reviewerID")

	var status *assignment.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := assignment.Status(raw)
		status = &st
	}

	items, err := s.svc.Assignments.Queue(r.Context(), reviewerID, status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if items == nil {
		items = []assignment.QueueItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

type draftPayload struct {
	Responses  map[string]any     `json:"responses"`
	Highlights []review.Highlight `json:"highlights"`
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	var payload draftPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	if err := s.svc.Reviews.SaveDraft(r.Context(), assignmentID, payload.Responses, payload.Highlights); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type submitPayload struct {
	FormSchemaID string             `json:"form_schema_id"`
	Responses    map[string]any     `json:"responses"`
	Highlights   []review.Highlight `json:"highlights"`
	Comments     *string            `json:"comments"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	var payload submitPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	responseID, err := s.svc.Reviews.Submit(r.Context(), assignmentID, review.SubmitRequest{
		SchemaID:   payload.FormSchemaID,
		Responses:  payload.Responses,
		Highlights: payload.Highlights,
		Comments:   payload.Comments,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response_id": responseID})
}

func (s *Server) handleGetResponse(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	resp, err := s.svc.Reviews.Response(r.Context(), assignmentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReviewerStats(w http.ResponseWriter, r *http.Request) {
	reviewerID := chi.URLParam(r, "reviewerID")

	result, err := s.svc.Stats.ReviewerStats(r.Context(), reviewerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTeamStats(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.Stats.TeamStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := parsePositiveInt(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.svc.Activity.Recent(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
