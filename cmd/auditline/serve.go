package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/auditline/auditline/internal/transport"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the audit HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			router := transport.NewRouter(transport.Services{
				Assignments: a.assignments,
				Reviews:     a.reviews,
				Stats:       a.stats,
				Activity:    a.activity,
				Reviewers:   a.reviewers,
			})

			addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: router,
			}

			go func() {
				a.logger.Info("server listening", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					a.logger.Error("server error", "error", err)
				}
			}()

			waitForShutdown(a.logger, httpServer)
			return nil
		},
	}
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
