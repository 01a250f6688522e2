package repository

import (
	"context"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// Plan defines the interface for production plan persistence
type Plan interface {
	ListPlannedItems(ctx context.Context, accountID string) ([]domain.PlannedItem, error)
	GetPlannedItem(ctx context.Context, accountID, id string) (*domain.PlannedItem, error)
	// AddPlannedItem inserts item, or adds item.DailyQuantity to the existing
	// entry for the same item name. The stored entry is returned.
	AddPlannedItem(ctx context.Context, item domain.PlannedItem) (*domain.PlannedItem, error)
	UpdatePlannedQuantity(ctx context.Context, accountID, id string, quantity, lotSize int) (*domain.PlannedItem, error)
	DeletePlannedItem(ctx context.Context, accountID, id string) error
}

// Favorite defines the interface for favorite items persistence
type Favorite interface {
	ListFavorites(ctx context.Context, accountID string) ([]domain.Favorite, error)
	// AddFavorite is idempotent
	AddFavorite(ctx context.Context, favorite domain.Favorite) error
	RemoveFavorite(ctx context.Context, accountID, itemName string) error
}

// Store groups the repositories a planner process needs
type Store interface {
	Plan
	Favorite
}
