package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "drop the database before recreating it")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// 1. Connect to the maintenance database to manage the target one
	admin := *cfg
	admin.DBName = "postgres"
	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}
	defer conn.Close(ctx)

	dbIdent := pgx.Identifier{cfg.DBName}.Sanitize()

	if *reset {
		fmt.Printf("Terminating connections to %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			log.Printf("Warning: failed to terminate connections: %v", err)
		}

		fmt.Printf("Dropping database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+dbIdent); err != nil {
			log.Fatalf("Failed to drop database: %v", err)
		}
	}

	// 2. Create the database when missing
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+dbIdent); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}

	// 3. Apply the embedded migrations
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(),
		database.DefaultMaxConnections, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}
