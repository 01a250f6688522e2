package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/osse101/DofusPlanner_Go/internal/bootstrap"
	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/plan"
)

// debug dumps an account's plan, favorites and aggregated requirements
// straight from the configured storage.
func main() {
	account := flag.String("account", "", "account id to inspect")
	flag.Parse()

	if *account == "" {
		log.Fatal("Usage: debug -account <id>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	if repos.Pool != nil {
		defer repos.Pool.Close()
	}

	svc := plan.NewService(repos.Plan, repos.Favorite, cat, 0, 0)

	fmt.Println("--- Plan ---")
	items, err := svc.ListPlan(ctx, *account)
	if err != nil {
		log.Printf("Failed to list plan: %v", err)
	}
	for _, item := range items {
		fmt.Printf("ID: %s, Item: %s, Daily: %d, Lot: %d\n", item.ID, item.ItemName, item.DailyQuantity, item.LotSize)
	}

	fmt.Println("\n--- Favorites ---")
	favorites, err := svc.ListFavorites(ctx, *account)
	if err != nil {
		log.Printf("Failed to list favorites: %v", err)
	}
	for _, fav := range favorites {
		fmt.Printf("Item: %s, Added: %s\n", fav.ItemName, fav.CreatedAt.Format("2006-01-02"))
	}

	fmt.Println("\n--- Requirements ---")
	reqs, err := svc.Requirements(ctx, *account)
	if err != nil {
		log.Printf("Failed to compute requirements: %v", err)
	}
	for _, req := range reqs {
		fmt.Printf("ID: %d, Resource: %s, Total: %d, Craftable: %t\n", req.ID, req.Name, req.TotalQuantity, req.IsCraftable)
		for _, contrib := range req.Recipes {
			fmt.Printf("    %s needs %d (daily %d)\n", contrib.ItemName, contrib.QuantityNeeded, contrib.DailyProduction)
		}
	}
}
