package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/auditline/auditline/internal/config"
	"github.com/auditline/auditline/internal/domain/activity"
	"github.com/auditline/auditline/internal/domain/assignment"
	"github.com/auditline/auditline/internal/domain/review"
	"github.com/auditline/auditline/internal/domain/stats"
	"github.com/auditline/auditline/internal/sqlite"
)

// app bundles the wired services and their backing database.
type app struct {
	cfg         config.Config
	logger      *slog.Logger
	db          *sqlite.DB
	reviewers   *sqlite.ReviewerRepository
	assignments *assignment.Service
	reviews     *review.Service
	stats       *stats.Service
	activity    *activity.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("preparing database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	callRepo := sqlite.NewCallRepository(db)
	reviewerRepo := sqlite.NewReviewerRepository(db)
	assignmentRepo := sqlite.NewAssignmentRepository(db)
	responseRepo := sqlite.NewResponseRepository(db)
	schemaRepo := sqlite.NewSchemaRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)

	if err := schemaRepo.EnsureDefault(context.Background(), cfg.Audit.DefaultSchemaID); err != nil {
		db.Close()
		return nil, fmt.Errorf("installing default schema: %w", err)
	}

	activitySvc := activity.NewService(activityRepo, logger)
	assignmentSvc := assignment.NewService(
		callRepo,
		reviewerRepo,
		assignmentRepo,
		activitySvc,
		assignment.Options{
			DueWindow: time.Duration(cfg.Audit.DueDays) * 24 * time.Hour,
			BatchSize: cfg.Audit.AssignBatch,
		},
		logger,
	)
	reviewSvc := review.NewService(
		responseRepo,
		assignmentRepo,
		schemaRepo,
		activitySvc,
		cfg.Audit.DefaultSchemaID,
		logger,
	)
	statsSvc := stats.NewService(statsRepo, cfg.Audit.DailyQuota, logger)

	return &app{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		reviewers:   reviewerRepo,
		assignments: assignmentSvc,
		reviews:     reviewSvc,
		stats:       statsSvc,
		activity:    activitySvc,
	}, nil
}

func (a *app) close() {
	a.db.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
