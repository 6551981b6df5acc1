// cmd/main.go is the application entry point.
// It loads the seed, wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/config"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/database"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/handler"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/metrics"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/repository"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/seed"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// ── 1. Load the seed ─────────────────────────────────────────────────
	doc, err := loadSeed(ctx, cfg, logger)
	if err != nil {
		return err
	}
	data, err := doc.Resolve()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("seed loaded", "source", cfg.SeedSource, "users", len(data.Users), "events", len(data.Events))

	// ── 2. Wire up layers ────────────────────────────────────────────────
	userIDs, eventIDs := idGenerators(cfg, data)
	users := repository.NewUserRepository(userIDs, data.Users)
	events := repository.NewEventRepository(eventIDs, data.Events)

	feed := service.NewFeed(cfg.NotificationBuffer)
	notifiers := service.Notifiers{service.LogNotifier{Logger: logger}, feed}

	var metricsHandler http.Handler
	if cfg.EnableMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		notifiers = append(notifiers, metrics.New(reg, users, events))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	dir := service.NewDirectory(users, events,
		service.WithNotifier(notifiers),
		service.AllowOrganizerJoins(cfg.AllowOrganizerJoins),
	)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.NewRouter(handler.NewDirectoryHandler(dir, feed), logger, metricsHandler)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func loadSeed(ctx context.Context, cfg *config.Config, logger *slog.Logger) (seed.Document, error) {
	switch cfg.SeedSource {
	case config.SeedFile:
		return seed.LoadFile(cfg.SeedFile)
	case config.SeedPostgres:
		pool, err := database.NewPool(ctx, cfg.DB, logger)
		if err != nil {
			return seed.Document{}, fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		return database.LoadSeed(ctx, pool)
	}
	return seed.Builtin(), nil
}

func idGenerators(cfg *config.Config, data seed.Data) (users, events repository.IDGenerator) {
	if cfg.IDStrategy == config.IDUUID {
		return repository.UUIDs{}, repository.UUIDs{}
	}
	return repository.NewSequence(data.UserIDs()), repository.NewSequence(data.EventIDs())
}
