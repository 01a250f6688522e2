package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/planning"
)

// MockPlanService mocks plan.Service
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) ListPlan(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlannedItem), args.Error(1)
}

func (m *MockPlanService) AddToPlan(ctx context.Context, accountID, itemName string, lotSize int) (*domain.PlannedItem, error) {
	args := m.Called(ctx, accountID, itemName, lotSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedItem), args.Error(1)
}

func (m *MockPlanService) SetQuantity(ctx context.Context, accountID, id string, quantity, lotSize int) (*domain.PlannedItem, error) {
	args := m.Called(ctx, accountID, id, quantity, lotSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedItem), args.Error(1)
}

func (m *MockPlanService) RemoveFromPlan(ctx context.Context, accountID, id string) error {
	return m.Called(ctx, accountID, id).Error(0)
}

func (m *MockPlanService) ListFavorites(ctx context.Context, accountID string) ([]domain.Favorite, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *MockPlanService) AddFavorite(ctx context.Context, accountID, itemName string) error {
	return m.Called(ctx, accountID, itemName).Error(0)
}

func (m *MockPlanService) RemoveFavorite(ctx context.Context, accountID, itemName string) error {
	return m.Called(ctx, accountID, itemName).Error(0)
}

func (m *MockPlanService) Requirements(ctx context.Context, accountID string) ([]domain.ResourceRequirement, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceRequirement), args.Error(1)
}

func (m *MockPlanService) Needs(ctx context.Context, accountID string, stock planning.LocalStock) ([]domain.NetRequirement, error) {
	args := m.Called(ctx, accountID, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NetRequirement), args.Error(1)
}

func (m *MockPlanService) ShoppingList(ctx context.Context, accountID string, selected planning.Selection, stock planning.LocalStock) ([]domain.IngredientTotal, error) {
	args := m.Called(ctx, accountID, selected, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IngredientTotal), args.Error(1)
}

func (m *MockPlanService) JobBreakdown(ctx context.Context, accountID string) ([]domain.JobPlan, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPlan), args.Error(1)
}

// MockCatalog mocks CatalogReader
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Items(filter domain.ItemFilter) []domain.CatalogItem {
	return m.Called(filter).Get(0).([]domain.CatalogItem)
}

func (m *MockCatalog) Search(query string, limit int) []domain.CatalogItem {
	return m.Called(query, limit).Get(0).([]domain.CatalogItem)
}

func (m *MockCatalog) Recipe(name string) (domain.Recipe, bool) {
	args := m.Called(name)
	return args.Get(0).(domain.Recipe), args.Bool(1)
}

func (m *MockCatalog) Jobs() []domain.Job {
	return m.Called().Get(0).([]domain.Job)
}

// withURLParams attaches chi route parameters to a request built with httptest
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
