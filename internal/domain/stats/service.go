package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/auditline/auditline/internal/domain/assignment"
)

const defaultDailyQuota = 10

// Service computes dashboard aggregates for reviewers and managers.
type Service struct {
	store      Store
	dailyQuota int
	logger     *slog.Logger
}

// NewService creates a new stats service.
func NewService(store Store, dailyQuota int, logger *slog.Logger) *Service {
	if dailyQuota <= 0 {
		dailyQuota = defaultDailyQuota
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, dailyQuota: dailyQuota, logger: logger}
}

// ReviewerStats returns the dashboard numbers for one reviewer.
func (s *Service) ReviewerStats(ctx context.Context, reviewerID string) (*ReviewerStats, error) {
	pending, err := s.store.CountByReviewer(ctx, reviewerID, assignment.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("counting pending audits: %w", err)
	}

	todayStart := time.Now().UTC().Truncate(24 * time.Hour)
	completedToday, err := s.store.CountCompletedSince(ctx, reviewerID, todayStart)
	if err != nil {
		return nil, fmt.Errorf("counting audits completed today: %w", err)
	}

	completedTotal, err := s.store.CountByReviewer(ctx, reviewerID, assignment.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("counting completed audits: %w", err)
	}

	avgScore, err := s.store.AverageScore(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("averaging scores: %w", err)
	}

	return &ReviewerStats{
		PendingAudits:        pending,
		CompletedToday:       completedToday,
		CompletedTotal:       completedTotal,
		DailyQuota:           s.dailyQuota,
		CompletionPercentage: round1(float64(completedToday) / float64(s.dailyQuota) * 100),
		AverageScore:         round2(avgScore),
	}, nil
}

// TeamStats returns pool-wide dashboard numbers.
func (s *Service) TeamStats(ctx context.Context) (*TeamStats, error) {
	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting audits: %w", err)
	}

	completed, err := s.store.CountByStatus(ctx, assignment.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("counting completed audits: %w", err)
	}

	flagged, err := s.store.CountByStatus(ctx, assignment.StatusFlagged)
	if err != nil {
		return nil, fmt.Errorf("counting flagged audits: %w", err)
	}

	avgScore, err := s.store.AverageScore(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("averaging scores: %w", err)
	}

	complianceRate := 0.0
	if total > 0 {
		complianceRate = round1(float64(completed) / float64(total) * 100)
	}

	return &TeamStats{
		TotalAudits:    total,
		AverageScore:   round2(avgScore),
		ComplianceRate: complianceRate,
		FlaggedAudits:  flagged,
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
