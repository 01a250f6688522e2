package plan

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

type cachedRequirements struct {
	Version      string
	Requirements []domain.ResourceRequirement
	CachedAt     time.Time
}

// requirementCache keeps the last aggregation of each account's plan.
// Entries are dropped on every plan mutation and expire after ttl.
//
// Every mutation also bumps the account's generation. A result computed
// from a plan read taken before a mutation is never stored.
type requirementCache struct {
	lru *expirable.LRU[string, *cachedRequirements]

	mu          sync.Mutex
	generations map[string]uint64
}

func newRequirementCache(size int, ttl time.Duration) *requirementCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &requirementCache{
		lru:         expirable.NewLRU[string, *cachedRequirements](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

func (c *requirementCache) Get(accountID string) ([]domain.ResourceRequirement, bool) {
	entry, found := c.lru.Get(accountID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(accountID)
		return nil, false
	}
	return entry.Requirements, true
}

// Generation returns the account's mutation counter. Capture it before
// reading the plan and hand it back to SetIfCurrent.
func (c *requirementCache) Generation(accountID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[accountID]
}

// SetIfCurrent stores reqs unless the plan was mutated since generation
// was captured. It reports whether the entry was stored.
func (c *requirementCache) SetIfCurrent(accountID string, generation uint64, reqs []domain.ResourceRequirement) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[accountID] != generation {
		return false
	}
	c.lru.Add(accountID, &cachedRequirements{
		Version:      CacheSchemaVersion,
		Requirements: reqs,
		CachedAt:     time.Now(),
	})
	return true
}

func (c *requirementCache) Invalidate(accountID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[accountID]++
	c.lru.Remove(accountID)
}
