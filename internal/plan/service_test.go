package plan

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DofusPlanner_Go/internal/catalog"
	"github.com/osse101/DofusPlanner_Go/internal/database/memory"
	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/planning"
)

const (
	idBle    = 289
	idEau    = 311
	idFarine = 532
	idSel    = 1730
)

func testCatalog() *catalog.Catalog {
	items := []domain.CatalogItem{
		{Category: "Consommable", Name: "Pain d'Incarnam", Type: "Pain", Level: 1, ImageURL: "https://img/pain.png"},
		{Category: "Consommable", Name: "Brioche", Type: "Pain", Level: 30},
		{Category: "Ressource", Name: "Blé", Type: "Céréale", Level: 1, ImageURL: "https://img/ble.png"},
		{Category: "Ressource", Name: "Eau potable", Type: "Ressource diverse", Level: 1},
		{Category: "Ressource", Name: "Farine de Blé", Type: "Farine", Level: 10},
	}
	recipes := domain.RecipeBook{
		"Pain d'Incarnam": {
			ItemName: "Pain d'Incarnam", HasRecipe: true, Job: "Boulanger", JobLevel: 1,
			Ingredients: []domain.Ingredient{
				{ID: idBle, Name: "Blé", QuantityPerUnit: 4},
				{ID: idEau, Name: "Eau potable", QuantityPerUnit: 1},
			},
		},
		"Brioche": {
			ItemName: "Brioche", HasRecipe: true, Job: "Boulanger", JobLevel: 30,
			Ingredients: []domain.Ingredient{{ID: idFarine, Name: "Farine de Blé", QuantityPerUnit: 3}},
		},
		"Farine de Blé": {
			ItemName: "Farine de Blé", HasRecipe: true, Job: "Paysan", JobLevel: 10,
			Ingredients: []domain.Ingredient{
				{ID: idBle, Name: "Blé", QuantityPerUnit: 3},
				{ID: idSel, Name: "Sel", QuantityPerUnit: 1},
			},
		},
	}
	return catalog.New(items, recipes, nil)
}

func newTestService() Service {
	store := memory.NewStore()
	return NewService(store, store, testCatalog(), 10, time.Minute)
}

// MockPlanRepository mocks repository.Plan
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) ListPlannedItems(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlannedItem), args.Error(1)
}

func (m *MockPlanRepository) GetPlannedItem(ctx context.Context, accountID, id string) (*domain.PlannedItem, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedItem), args.Error(1)
}

func (m *MockPlanRepository) AddPlannedItem(ctx context.Context, item domain.PlannedItem) (*domain.PlannedItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedItem), args.Error(1)
}

func (m *MockPlanRepository) UpdatePlannedQuantity(ctx context.Context, accountID, id string, quantity, lotSize int) (*domain.PlannedItem, error) {
	args := m.Called(ctx, accountID, id, quantity, lotSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedItem), args.Error(1)
}

func (m *MockPlanRepository) DeletePlannedItem(ctx context.Context, accountID, id string) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

func TestAddToPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("creates entry with lot size as quantity", func(t *testing.T) {
		svc := newTestService()

		item, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)

		require.NoError(t, err)
		assert.Equal(t, 10, item.DailyQuantity)
		assert.Equal(t, domain.LotSizeTen, item.LotSize)
		assert.Equal(t, "Consommable", item.Category)
		assert.Equal(t, "https://img/pain.png", item.ImageURL)
	})

	t.Run("increments existing entry by lot size", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
		require.NoError(t, err)
		item, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeHundred)
		require.NoError(t, err)

		assert.Equal(t, 110, item.DailyQuantity)
		plan, err := svc.ListPlan(ctx, "a1")
		require.NoError(t, err)
		assert.Len(t, plan, 1)
	})

	t.Run("defaults to unit lot", func(t *testing.T) {
		svc := newTestService()

		item, err := svc.AddToPlan(ctx, "a1", "Brioche", 0)

		require.NoError(t, err)
		assert.Equal(t, 1, item.DailyQuantity)
		assert.Equal(t, domain.LotSizeUnit, item.LotSize)
	})

	t.Run("resolves names ignoring accents and case", func(t *testing.T) {
		svc := newTestService()

		item, err := svc.AddToPlan(ctx, "a1", "farine de ble", 1)

		require.NoError(t, err)
		assert.Equal(t, "Farine de Blé", item.ItemName)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.ErrorIs(t, err, domain.ErrInvalidLotSize)

		_, err = svc.AddToPlan(ctx, "a1", "Dofus Émeraude", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, err = svc.AddToPlan(ctx, "a1", "  ", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, err = svc.AddToPlan(ctx, " ", "Brioche", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidAccount)
	})
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	item, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
	require.NoError(t, err)

	updated, err := svc.SetQuantity(ctx, "a1", item.ID, 250, 0)
	require.NoError(t, err)
	assert.Equal(t, 250, updated.DailyQuantity)
	assert.Equal(t, domain.LotSizeTen, updated.LotSize, "zero lot size keeps the current one")

	updated, err = svc.SetQuantity(ctx, "a1", item.ID, 0, domain.LotSizeHundred)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.DailyQuantity)
	assert.Equal(t, domain.LotSizeHundred, updated.LotSize)

	_, err = svc.SetQuantity(ctx, "a1", item.ID, -1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.SetQuantity(ctx, "a1", "missing", 5, 1)
	assert.ErrorIs(t, err, domain.ErrPlannedItemNotFound)

	_, err = svc.SetQuantity(ctx, "a1", "missing", 5, 0)
	assert.ErrorIs(t, err, domain.ErrPlannedItemNotFound)
}

func TestRemoveFromPlan(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	item, err := svc.AddToPlan(ctx, "a1", "Brioche", 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromPlan(ctx, "a1", item.ID))
	assert.ErrorIs(t, svc.RemoveFromPlan(ctx, "a1", item.ID), domain.ErrPlannedItemNotFound)

	plan, err := svc.ListPlan(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.AddFavorite(ctx, "a1", "ble"))
	require.NoError(t, svc.AddFavorite(ctx, "a1", "Brioche"))
	assert.ErrorIs(t, svc.AddFavorite(ctx, "a1", "Orge"), domain.ErrItemNotFound)

	favorites, err := svc.ListFavorites(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	names := []string{favorites[0].ItemName, favorites[1].ItemName}
	assert.ElementsMatch(t, []string{"Blé", "Brioche"}, names)

	require.NoError(t, svc.RemoveFavorite(ctx, "a1", "BLÉ"))
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, "a1", "Blé"), domain.ErrFavoriteNotFound)
}

func TestRequirements(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
	require.NoError(t, err)

	reqs, err := svc.Requirements(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, idBle, reqs[0].ID)
	assert.Equal(t, 40, reqs[0].TotalQuantity)
	assert.Equal(t, "https://img/ble.png", reqs[0].ImageURL)
	assert.Equal(t, idEau, reqs[1].ID)
	assert.Equal(t, 10, reqs[1].TotalQuantity)

	// Mutations invalidate the cached aggregation
	_, err = svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
	require.NoError(t, err)

	reqs, err = svc.Requirements(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 80, reqs[0].TotalQuantity)

	empty, err := svc.Requirements(ctx, "a2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRequirements_CachedUntilMutation(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPlanRepository)
	store := memory.NewStore()
	svc := NewService(repo, store, testCatalog(), 10, time.Minute)

	repo.On("ListPlannedItems", ctx, "a1").Return([]domain.PlannedItem{
		{AccountID: "a1", ItemName: "Pain d'Incarnam", DailyQuantity: 10},
	}, nil).Once()

	first, err := svc.Requirements(ctx, "a1")
	require.NoError(t, err)
	second, err := svc.Requirements(ctx, "a1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)

	repo.On("DeletePlannedItem", ctx, "a1", "x").Return(nil).Once()
	repo.On("ListPlannedItems", ctx, "a1").Return([]domain.PlannedItem{}, nil).Once()

	require.NoError(t, svc.RemoveFromPlan(ctx, "a1", "x"))
	reqs, err := svc.Requirements(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, reqs)
	repo.AssertExpectations(t)
}

// mutatingStore runs onList once, between the plan read and its return
type mutatingStore struct {
	*memory.Store
	onList func()
}

func (m *mutatingStore) ListPlannedItems(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	items, err := m.Store.ListPlannedItems(ctx, accountID)
	if hook := m.onList; hook != nil {
		m.onList = nil
		hook()
	}
	return items, err
}

func TestRequirements_MutationDuringAggregation(t *testing.T) {
	ctx := context.Background()
	store := &mutatingStore{Store: memory.NewStore()}
	svc := NewService(store, store, testCatalog(), 10, time.Minute)

	_, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
	require.NoError(t, err)

	store.onList = func() {
		_, err := svc.AddToPlan(ctx, "a1", "Brioche", domain.LotSizeUnit)
		require.NoError(t, err)
	}

	stale, err := svc.Requirements(ctx, "a1")
	require.NoError(t, err)
	assert.Len(t, stale, 2, "computed from the read taken before the mutation")

	reqs, err := svc.Requirements(ctx, "a1")
	require.NoError(t, err)
	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		names = append(names, req.Name)
	}
	assert.Contains(t, names, "Farine de Blé")
}

func TestRequirementCache_Generations(t *testing.T) {
	cache := newRequirementCache(0, time.Minute)
	reqs := []domain.ResourceRequirement{{ID: idBle, TotalQuantity: 4}}

	gen := cache.Generation("a1")
	cache.Invalidate("a1")
	assert.False(t, cache.SetIfCurrent("a1", gen, reqs))
	_, ok := cache.Get("a1")
	assert.False(t, ok)

	assert.True(t, cache.SetIfCurrent("a1", cache.Generation("a1"), reqs))
	got, ok := cache.Get("a1")
	require.True(t, ok)
	assert.Equal(t, reqs, got)

	assert.True(t, cache.SetIfCurrent("a2", cache.Generation("a2"), nil), "accounts are independent")
}

func TestDailyQuantityLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("set quantity", func(t *testing.T) {
		svc := newTestService()
		item, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeUnit)
		require.NoError(t, err)

		updated, err := svc.SetQuantity(ctx, "a1", item.ID, domain.MaxDailyQuantity, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxDailyQuantity, updated.DailyQuantity)

		_, err = svc.SetQuantity(ctx, "a1", item.ID, domain.MaxDailyQuantity+1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		_, err = svc.SetQuantity(ctx, "a1", item.ID, math.MaxInt, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("increment", func(t *testing.T) {
		svc := newTestService()
		item, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeUnit)
		require.NoError(t, err)
		_, err = svc.SetQuantity(ctx, "a1", item.ID, domain.MaxDailyQuantity-10, 0)
		require.NoError(t, err)

		raised, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxDailyQuantity, raised.DailyQuantity)

		_, err = svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeUnit)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		plan, err := svc.ListPlan(ctx, "a1")
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, domain.MaxDailyQuantity, plan[0].DailyQuantity)

		_, err = svc.AddToPlan(ctx, "a1", "Brioche", domain.LotSizeHundred)
		assert.NoError(t, err, "other items are unaffected")
	})
}

func TestRequirements_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPlanRepository)
	svc := NewService(repo, memory.NewStore(), testCatalog(), 10, time.Minute)

	repo.On("ListPlannedItems", ctx, "a1").Return(nil, errors.New("connection refused"))

	_, err := svc.Requirements(ctx, "a1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNeeds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
	require.NoError(t, err)

	needs, err := svc.Needs(ctx, "a1", planning.LocalStock{idBle: 25, idEau: 50})
	require.NoError(t, err)
	require.Len(t, needs, 2)

	assert.Equal(t, 40, needs[0].TotalQuantity)
	assert.Equal(t, 25, needs[0].Stock)
	assert.Equal(t, 15, needs[0].FinalQuantity)
	assert.Equal(t, 0, needs[1].FinalQuantity)
}

func TestShoppingList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
	require.NoError(t, err)
	brioche, err := svc.AddToPlan(ctx, "a1", "Brioche", domain.LotSizeUnit)
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, "a1", brioche.ID, 5, 0)
	require.NoError(t, err)

	t.Run("nothing selected lists requirements at face value", func(t *testing.T) {
		list, err := svc.ShoppingList(ctx, "a1", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []domain.IngredientTotal{
			{ID: idBle, Name: "Blé", ImageURL: "https://img/ble.png", Quantity: 40},
			{ID: idFarine, Name: "Farine de Blé", Quantity: 15},
			{ID: idEau, Name: "Eau potable", Quantity: 10},
		}, list)
	})

	t.Run("selected intermediate is replaced by its ingredients", func(t *testing.T) {
		list, err := svc.ShoppingList(ctx, "a1", planning.NewSelection(idFarine), nil)
		require.NoError(t, err)
		assert.Equal(t, []domain.IngredientTotal{
			{ID: idBle, Name: "Blé", ImageURL: "https://img/ble.png", Quantity: 85},
			{ID: idSel, Name: "Sel", Quantity: 15},
			{ID: idEau, Name: "Eau potable", Quantity: 10},
		}, list)
	})
}

func TestJobBreakdown(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddToPlan(ctx, "a1", "Pain d'Incarnam", domain.LotSizeTen)
	require.NoError(t, err)
	_, err = svc.AddToPlan(ctx, "a1", "Brioche", domain.LotSizeUnit)
	require.NoError(t, err)
	_, err = svc.AddToPlan(ctx, "a1", "Farine de Blé", domain.LotSizeHundred)
	require.NoError(t, err)

	jobs, err := svc.JobBreakdown(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Paysan", jobs[0].Job)
	assert.Equal(t, 100, jobs[0].DailyCraft)
	assert.Equal(t, "Boulanger", jobs[1].Job)
	assert.Equal(t, 11, jobs[1].DailyCraft)
	assert.Equal(t, 30, jobs[1].JobLevel)
	assert.ElementsMatch(t, []string{"Pain d'Incarnam", "Brioche"}, jobs[1].Items)
}
