package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/database"
	"github.com/osse101/DofusPlanner_Go/internal/database/memory"
	"github.com/osse101/DofusPlanner_Go/internal/database/postgres"
	"github.com/osse101/DofusPlanner_Go/internal/repository"
)

// Repositories holds the repository implementations used by the application
// together with the pool backing them, if any.
type Repositories struct {
	Plan     repository.Plan
	Favorite repository.Favorite

	// Pool is nil for in-memory storage
	Pool database.Pool
}

// InitializeRepositories opens the storage selected by cfg.Storage. For
// PostgreSQL the pool is created and the embedded migrations applied.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if cfg.Storage == config.StorageMemory {
		slog.Warn(LogMsgUsingMemoryStorage)
		store := memory.NewStore()
		return &Repositories{Plan: store, Favorite: store}, nil
	}

	slog.Info(LogMsgUsingPostgresStorage, "host", cfg.DBHost, "db", cfg.DBName)
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(),
		database.DefaultMaxConnections, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}

	return &Repositories{
		Plan:     postgres.NewPlanRepository(pool),
		Favorite: postgres.NewFavoriteRepository(pool),
		Pool:     pool,
	}, nil
}
