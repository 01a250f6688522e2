// @title DofusPlanner API
// @version 1.0
// @description Daily production planner for Dofus crafters: plans, aggregated resource needs and shopping lists.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/DofusPlanner_Go/internal/bootstrap"
	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/plan"
	"github.com/osse101/DofusPlanner_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	envWarnings, err := config.ValidateEnvWithWarnings(cfg.Storage)
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initStdoutLogger(cfg)
		slog.Warn("File logging disabled", "error", err)
	} else {
		defer logFile.Close()
	}

	for _, w := range envWarnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	planService := plan.NewService(repos.Plan, repos.Favorite, cat, cfg.CacheSize, cfg.CacheTTL)
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, repos.Pool, cat, planService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Pool:   repos.Pool,
	})
}
