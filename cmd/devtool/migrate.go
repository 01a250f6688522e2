package main

import (
	"context"
	"fmt"

	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status, create")
	}

	switch args[0] {
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		return runStreaming("go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", migrationsRelPath, "create", args[1], "sql")

	case "up":
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx := context.Background()
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(),
			database.DefaultMaxConnections, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		printOK("Migrations applied")
		return nil

	case "status":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runStreaming("go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", migrationsRelPath, "postgres", cfg.GetDBConnString(), "status")

	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}
