// Package memory keeps plans and favorites in process memory. It backs demo
// deployments (STORAGE=memory) and service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store implements repository.Plan and repository.Favorite
type Store struct {
	sync.RWMutex
	plans     map[string]map[string]*domain.PlannedItem // account -> id -> item
	favorites map[string]map[string]time.Time           // account -> item name -> added
	now       func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		plans:     make(map[string]map[string]*domain.PlannedItem),
		favorites: make(map[string]map[string]time.Time),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) ListPlannedItems(_ context.Context, accountID string) ([]domain.PlannedItem, error) {
	s.RLock()
	defer s.RUnlock()

	items := make([]domain.PlannedItem, 0, len(s.plans[accountID]))
	for _, item := range s.plans[accountID] {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ItemName < items[j].ItemName
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetPlannedItem(_ context.Context, accountID, id string) (*domain.PlannedItem, error) {
	s.RLock()
	defer s.RUnlock()

	item, ok := s.plans[accountID][id]
	if !ok {
		return nil, domain.ErrPlannedItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *Store) AddPlannedItem(_ context.Context, item domain.PlannedItem) (*domain.PlannedItem, error) {
	s.Lock()
	defer s.Unlock()

	now := s.now()
	plan, ok := s.plans[item.AccountID]
	if !ok {
		plan = make(map[string]*domain.PlannedItem)
		s.plans[item.AccountID] = plan
	}

	for _, existing := range plan {
		if existing.ItemName == item.ItemName {
			existing.DailyQuantity += item.DailyQuantity
			existing.LotSize = item.LotSize
			existing.UpdatedAt = now
			cp := *existing
			return &cp, nil
		}
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	stored := item
	plan[item.ID] = &stored
	return &item, nil
}

func (s *Store) UpdatePlannedQuantity(_ context.Context, accountID, id string, quantity, lotSize int) (*domain.PlannedItem, error) {
	s.Lock()
	defer s.Unlock()

	item, ok := s.plans[accountID][id]
	if !ok {
		return nil, domain.ErrPlannedItemNotFound
	}
	item.DailyQuantity = quantity
	item.LotSize = lotSize
	item.UpdatedAt = s.now()
	cp := *item
	return &cp, nil
}

func (s *Store) DeletePlannedItem(_ context.Context, accountID, id string) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.plans[accountID][id]; !ok {
		return domain.ErrPlannedItemNotFound
	}
	delete(s.plans[accountID], id)
	return nil
}

func (s *Store) ListFavorites(_ context.Context, accountID string) ([]domain.Favorite, error) {
	s.RLock()
	defer s.RUnlock()

	favorites := make([]domain.Favorite, 0, len(s.favorites[accountID]))
	for name, added := range s.favorites[accountID] {
		favorites = append(favorites, domain.Favorite{AccountID: accountID, ItemName: name, CreatedAt: added})
	}
	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].CreatedAt.Equal(favorites[j].CreatedAt) {
			return favorites[i].ItemName < favorites[j].ItemName
		}
		return favorites[i].CreatedAt.Before(favorites[j].CreatedAt)
	})
	return favorites, nil
}

func (s *Store) AddFavorite(_ context.Context, favorite domain.Favorite) error {
	s.Lock()
	defer s.Unlock()

	set, ok := s.favorites[favorite.AccountID]
	if !ok {
		set = make(map[string]time.Time)
		s.favorites[favorite.AccountID] = set
	}
	if _, exists := set[favorite.ItemName]; !exists {
		set[favorite.ItemName] = s.now()
	}
	return nil
}

func (s *Store) RemoveFavorite(_ context.Context, accountID, itemName string) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.favorites[accountID][itemName]; !ok {
		return domain.ErrFavoriteNotFound
	}
	delete(s.favorites[accountID], itemName)
	return nil
}
