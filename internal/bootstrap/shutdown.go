package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DofusPlanner_Go/internal/database"
	"github.com/osse101/DofusPlanner_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Pool   database.Pool
}

// GracefulShutdown stops the HTTP server first so no request is left
// holding a connection, then closes the database pool.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.Pool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
