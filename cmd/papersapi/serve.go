package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/papersapi/internal/config"
	"github.com/kailas-cloud/papersapi/internal/metrics"
	chiTransport "github.com/kailas-cloud/papersapi/internal/transport/chi"
	healthuc "github.com/kailas-cloud/papersapi/internal/usecase/health"
	queryuc "github.com/kailas-cloud/papersapi/internal/usecase/query"
	"github.com/kailas-cloud/papersapi/internal/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, repo, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting papers API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", config.GetEnv()),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("records", repo.Count()),
		zap.Bool("metrics", cfg.MetricsEnabled()),
	)

	// Register query metrics explicitly (no init())
	metrics.RegisterQueryMetrics()

	var queries queryuc.Executor = queryuc.New(repo)
	queries = queryuc.NewInstrumented(queries)
	healthSvc := healthuc.New(repo)

	server := chiTransport.NewServer(queries, healthSvc, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterOptions{
		AllowOrigin:    cfg.HTTP.AllowOrigin,
		CompressLevel:  cfg.HTTP.CompressLevel,
		MetricsEnabled: cfg.MetricsEnabled(),
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
