package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/logger"
	"github.com/osse101/DofusPlanner_Go/internal/metrics"
	"github.com/osse101/DofusPlanner_Go/internal/planning"
	"github.com/osse101/DofusPlanner_Go/internal/repository"
)

// Catalog is the reference data the service needs
type Catalog interface {
	Item(name string) (domain.CatalogItem, bool)
	ImageURL(name string) string
	Recipes() domain.RecipeBook
}

// Service defines the production plan business logic
type Service interface {
	// Plan editing
	ListPlan(ctx context.Context, accountID string) ([]domain.PlannedItem, error)
	AddToPlan(ctx context.Context, accountID, itemName string, lotSize int) (*domain.PlannedItem, error)
	SetQuantity(ctx context.Context, accountID, id string, quantity, lotSize int) (*domain.PlannedItem, error)
	RemoveFromPlan(ctx context.Context, accountID, id string) error

	// Favorites
	ListFavorites(ctx context.Context, accountID string) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, accountID, itemName string) error
	RemoveFavorite(ctx context.Context, accountID, itemName string) error

	// Derived views
	Requirements(ctx context.Context, accountID string) ([]domain.ResourceRequirement, error)
	Needs(ctx context.Context, accountID string, stock planning.LocalStock) ([]domain.NetRequirement, error)
	ShoppingList(ctx context.Context, accountID string, selected planning.Selection, stock planning.LocalStock) ([]domain.IngredientTotal, error)
	JobBreakdown(ctx context.Context, accountID string) ([]domain.JobPlan, error)
}

type service struct {
	plans     repository.Plan
	favorites repository.Favorite
	catalog   Catalog
	cache     *requirementCache
}

// NewService creates a new plan service
func NewService(plans repository.Plan, favorites repository.Favorite, catalog Catalog, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		plans:     plans,
		favorites: favorites,
		catalog:   catalog,
		cache:     newRequirementCache(cacheSize, cacheTTL),
	}
}

func (s *service) ListPlan(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	if err := validateAccount(accountID); err != nil {
		return nil, err
	}
	items, err := s.plans.ListPlannedItems(ctx, accountID)
	if err != nil {
		return nil, s.repoError(ctx, "ListPlannedItems", err)
	}
	return items, nil
}

// AddToPlan creates a planned item for itemName with a daily quantity of
// lotSize, or raises an existing entry for the same item by lotSize.
func (s *service) AddToPlan(ctx context.Context, accountID, itemName string, lotSize int) (*domain.PlannedItem, error) {
	if err := validateAccount(accountID); err != nil {
		return nil, err
	}
	if lotSize == 0 {
		lotSize = domain.LotSizeUnit
	}
	if err := validateLotSize(lotSize); err != nil {
		return nil, err
	}

	item, err := s.resolveItem(itemName)
	if err != nil {
		return nil, err
	}
	if err := s.checkIncrement(ctx, accountID, item.Name, lotSize); err != nil {
		return nil, err
	}

	stored, err := s.plans.AddPlannedItem(ctx, domain.PlannedItem{
		AccountID:     accountID,
		ItemName:      item.Name,
		ImageURL:      item.ImageURL,
		Category:      item.Category,
		Type:          item.Type,
		DailyQuantity: lotSize,
		LotSize:       lotSize,
	})
	if err != nil {
		return nil, s.repoError(ctx, "AddPlannedItem", err)
	}

	s.cache.Invalidate(accountID)
	metrics.PlanMutations.WithLabelValues(metrics.OperationAddItem).Inc()
	logger.FromContext(ctx).Info(LogMsgItemAdded,
		logger.AttrKeyAccountID, accountID,
		"item", stored.ItemName,
		"daily_quantity", stored.DailyQuantity)
	return stored, nil
}

// SetQuantity overwrites the daily quantity of a planned item. A zero
// lotSize keeps the entry's current lot size.
func (s *service) SetQuantity(ctx context.Context, accountID, id string, quantity, lotSize int) (*domain.PlannedItem, error) {
	if err := validateAccount(accountID); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if lotSize == 0 {
		current, err := s.plans.GetPlannedItem(ctx, accountID, id)
		if err != nil {
			return nil, s.repoError(ctx, "GetPlannedItem", err)
		}
		lotSize = current.LotSize
	}
	if err := validateLotSize(lotSize); err != nil {
		return nil, err
	}

	item, err := s.plans.UpdatePlannedQuantity(ctx, accountID, id, quantity, lotSize)
	if err != nil {
		return nil, s.repoError(ctx, "UpdatePlannedQuantity", err)
	}

	s.cache.Invalidate(accountID)
	metrics.PlanMutations.WithLabelValues(metrics.OperationSetQuantity).Inc()
	logger.FromContext(ctx).Info(LogMsgQuantityUpdated,
		logger.AttrKeyAccountID, accountID,
		"item", item.ItemName,
		"daily_quantity", quantity)
	return item, nil
}

func (s *service) RemoveFromPlan(ctx context.Context, accountID, id string) error {
	if err := validateAccount(accountID); err != nil {
		return err
	}
	if err := s.plans.DeletePlannedItem(ctx, accountID, id); err != nil {
		return s.repoError(ctx, "DeletePlannedItem", err)
	}

	s.cache.Invalidate(accountID)
	metrics.PlanMutations.WithLabelValues(metrics.OperationRemoveItem).Inc()
	logger.FromContext(ctx).Info(LogMsgItemRemoved, logger.AttrKeyAccountID, accountID, "id", id)
	return nil
}

func (s *service) ListFavorites(ctx context.Context, accountID string) ([]domain.Favorite, error) {
	if err := validateAccount(accountID); err != nil {
		return nil, err
	}
	favorites, err := s.favorites.ListFavorites(ctx, accountID)
	if err != nil {
		return nil, s.repoError(ctx, "ListFavorites", err)
	}
	return favorites, nil
}

func (s *service) AddFavorite(ctx context.Context, accountID, itemName string) error {
	if err := validateAccount(accountID); err != nil {
		return err
	}
	item, err := s.resolveItem(itemName)
	if err != nil {
		return err
	}

	if err := s.favorites.AddFavorite(ctx, domain.Favorite{AccountID: accountID, ItemName: item.Name}); err != nil {
		return s.repoError(ctx, "AddFavorite", err)
	}

	metrics.PlanMutations.WithLabelValues(metrics.OperationAddFavorite).Inc()
	logger.FromContext(ctx).Info(LogMsgFavoriteAdded, logger.AttrKeyAccountID, accountID, "item", item.Name)
	return nil
}

func (s *service) RemoveFavorite(ctx context.Context, accountID, itemName string) error {
	if err := validateAccount(accountID); err != nil {
		return err
	}
	name := itemName
	if item, ok := s.catalog.Item(itemName); ok {
		name = item.Name
	}
	if err := s.favorites.RemoveFavorite(ctx, accountID, name); err != nil {
		return s.repoError(ctx, "RemoveFavorite", err)
	}

	metrics.PlanMutations.WithLabelValues(metrics.OperationRemoveFavorite).Inc()
	logger.FromContext(ctx).Info(LogMsgFavoriteRemoved, logger.AttrKeyAccountID, accountID, "item", name)
	return nil
}

// Requirements aggregates the account's plan through the recipe table
func (s *service) Requirements(ctx context.Context, accountID string) ([]domain.ResourceRequirement, error) {
	if err := validateAccount(accountID); err != nil {
		return nil, err
	}

	if reqs, ok := s.cache.Get(accountID); ok {
		metrics.RequirementCache.WithLabelValues(metrics.ResultHit).Inc()
		logger.FromContext(ctx).Debug(LogMsgRequirementsCached, logger.AttrKeyAccountID, accountID)
		return reqs, nil
	}
	metrics.RequirementCache.WithLabelValues(metrics.ResultMiss).Inc()

	generation := s.cache.Generation(accountID)
	items, err := s.plans.ListPlannedItems(ctx, accountID)
	if err != nil {
		return nil, s.repoError(ctx, "ListPlannedItems", err)
	}

	start := time.Now()
	reqs := planning.ComputeRequirements(items, s.catalog.Recipes(), s.catalog)
	metrics.RequirementDuration.Observe(time.Since(start).Seconds())
	metrics.RequirementComputations.Inc()

	if !s.cache.SetIfCurrent(accountID, generation, reqs) {
		logger.FromContext(ctx).Debug(LogMsgRequirementsStale, logger.AttrKeyAccountID, accountID)
	}
	logger.FromContext(ctx).Debug(LogMsgRequirementsBuilt,
		logger.AttrKeyAccountID, accountID,
		"planned_items", len(items),
		"requirements", len(reqs))
	return reqs, nil
}

func (s *service) Needs(ctx context.Context, accountID string, stock planning.LocalStock) ([]domain.NetRequirement, error) {
	reqs, err := s.Requirements(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return planning.NetAll(reqs, stock), nil
}

func (s *service) ShoppingList(ctx context.Context, accountID string, selected planning.Selection, stock planning.LocalStock) ([]domain.IngredientTotal, error) {
	reqs, err := s.Requirements(ctx, accountID)
	if err != nil {
		return nil, err
	}

	list := planning.BuildShoppingList(reqs, selected, stock)
	metrics.ShoppingListLines.Observe(float64(len(list)))
	logger.FromContext(ctx).Debug(LogMsgShoppingListBuilt,
		logger.AttrKeyAccountID, accountID,
		"selected", len(selected),
		"lines", len(list))
	return list, nil
}

func (s *service) JobBreakdown(ctx context.Context, accountID string) ([]domain.JobPlan, error) {
	items, err := s.ListPlan(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return planning.GroupByJob(items, s.catalog.Recipes()), nil
}

// checkIncrement rejects a lot that would raise an existing entry for
// itemName above the daily maximum.
func (s *service) checkIncrement(ctx context.Context, accountID, itemName string, lotSize int) error {
	items, err := s.plans.ListPlannedItems(ctx, accountID)
	if err != nil {
		return s.repoError(ctx, "ListPlannedItems", err)
	}
	for _, existing := range items {
		if existing.ItemName == itemName {
			return validateQuantity(existing.DailyQuantity + lotSize)
		}
	}
	return nil
}

// resolveItem finds itemName in the catalog, falling back to the recipe
// table for craftable items the catalog does not list.
func (s *service) resolveItem(itemName string) (domain.CatalogItem, error) {
	name := strings.TrimSpace(itemName)
	if name == "" {
		return domain.CatalogItem{}, fmt.Errorf(ErrMsgUnknownItem, domain.ErrItemNotFound, itemName)
	}
	if item, ok := s.catalog.Item(name); ok {
		return item, nil
	}
	if _, ok := s.catalog.Recipes()[name]; ok {
		return domain.CatalogItem{Name: name}, nil
	}
	return domain.CatalogItem{}, fmt.Errorf(ErrMsgUnknownItem, domain.ErrItemNotFound, itemName)
}

// repoError logs unexpected persistence failures. Domain errors pass through.
func (s *service) repoError(ctx context.Context, op string, err error) error {
	if isDomainError(err) {
		return err
	}
	logger.FromContext(ctx).Error(LogMsgRepositoryFailure, "operation", op, "error", err)
	return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, op, err)
}

func validateAccount(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return fmt.Errorf(ErrMsgEmptyAccount, domain.ErrInvalidAccount)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf(ErrMsgNegativeQuantity, domain.ErrInvalidInput, domain.ErrInvalidQuantity, quantity)
	}
	if quantity > domain.MaxDailyQuantity {
		return fmt.Errorf(ErrMsgQuantityTooLarge, domain.ErrInvalidInput, domain.ErrInvalidQuantity, quantity, domain.MaxDailyQuantity)
	}
	return nil
}

func validateLotSize(lotSize int) error {
	if !domain.ValidLotSizes[lotSize] {
		return fmt.Errorf(ErrMsgBadLotSize, domain.ErrInvalidInput, domain.ErrInvalidLotSize, lotSize)
	}
	return nil
}
