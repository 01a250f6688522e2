package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/DofusPlanner_Go/internal/bootstrap"
	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/plan"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed a demo account plan from the catalog ([account])"
}

// demoPlan lists catalog items and lot sizes for the demo account
var demoPlan = []struct {
	item string
	lot  int
}{
	{"Pain d'Incarnam", 10},
	{"Brioche", 100},
	{"Galette d'Avoine", 10},
}

func (c *SeedCommand) Run(args []string) error {
	account := demoAccount
	if len(args) > 0 {
		account = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	if repos.Pool != nil {
		defer repos.Pool.Close()
	}

	svc := plan.NewService(repos.Plan, repos.Favorite, cat, 0, 0)

	printInfo("Seeding plan for account %q...", account)
	added := 0
	for _, entry := range demoPlan {
		item, err := svc.AddToPlan(ctx, account, entry.item, entry.lot)
		if errors.Is(err, domain.ErrItemNotFound) {
			printWarn("Skipping %s: not in catalog", entry.item)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", entry.item, err)
		}
		printOK("Added %s × %d", item.ItemName, item.DailyQuantity)
		added++
	}

	if added == 0 {
		return fmt.Errorf("no demo items found in catalog %s", cfg.DataDir)
	}
	return nil
}
