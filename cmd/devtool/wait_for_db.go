package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/DofusPlanner_Go/internal/config"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	printHeader("Waiting for database...")
	return waitForDB(30, 2*time.Second)
}

// waitForDB pings the configured database until it answers or attempts run out
func waitForDB(maxRetries int, retryInterval time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err = pingDB(cfg.GetDBConnString())
		if err == nil {
			printOK("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts", maxRetries)
}

func pingDB(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return conn.Ping(ctx)
}
