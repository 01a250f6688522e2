package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// Paths locates the reference data files inside a filesystem
type Paths struct {
	Items   string
	Recipes string
	Jobs    string
}

// Catalog is the read-only reference data: items, recipes and jobs.
// It is safe for concurrent use once built.
type Catalog struct {
	items   []domain.CatalogItem
	byName  map[string]int
	byKey   map[string]int
	keys    []string
	recipes domain.RecipeBook
	jobs    []domain.Job
}

// Load reads all reference data from fsys
func Load(fsys fs.FS, paths Paths) (*Catalog, error) {
	l := NewLoader(fsys)

	items, err := l.LoadItems(paths.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	recipes, err := l.LoadRecipes(paths.Recipes)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	var jobs []domain.Job
	if paths.Jobs != "" {
		jobs, err = l.LoadJobs(paths.Jobs)
		if err != nil {
			return nil, fmt.Errorf("failed to load jobs: %w", err)
		}
		if jobs == nil {
			slog.Warn(LogMsgJobsMissing, "path", paths.Jobs)
		}
	}

	c := New(items, recipes, jobs)
	slog.Info(LogMsgCatalogLoaded,
		"items", len(c.items),
		"recipes", len(c.recipes),
		"jobs", len(c.jobs))
	return c, nil
}

// New builds a catalog from already loaded data
func New(items []domain.CatalogItem, recipes domain.RecipeBook, jobs []domain.Job) *Catalog {
	if recipes == nil {
		recipes = domain.RecipeBook{}
	}

	c := &Catalog{
		items:   items,
		byName:  make(map[string]int, len(items)),
		byKey:   make(map[string]int, len(items)),
		keys:    make([]string, len(items)),
		recipes: recipes,
	}
	for i, item := range items {
		c.byName[item.Name] = i
		key := NormalizeName(item.Name)
		c.keys[i] = key
		if _, exists := c.byKey[key]; !exists {
			c.byKey[key] = i
		}
	}
	c.jobs = mergeJobs(jobs, recipes)
	return c
}

// mergeJobs completes the declared jobs with those only referenced by
// recipes, and counts the recipes of each job.
func mergeJobs(declared []domain.Job, recipes domain.RecipeBook) []domain.Job {
	counts := make(map[string]int)
	for _, r := range recipes {
		if r.HasRecipe && r.Job != "" {
			counts[r.Job]++
		}
	}

	seen := make(map[string]bool, len(declared))
	jobs := make([]domain.Job, 0, len(counts))
	for _, j := range declared {
		j.RecipeCount = counts[j.Name]
		jobs = append(jobs, j)
		seen[j.Name] = true
	}
	extra := make([]string, 0)
	for name := range counts {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		jobs = append(jobs, domain.Job{Name: name, RecipeCount: counts[name]})
	}
	return jobs
}

// Item looks an item up by exact name, then by normalized name
func (c *Catalog) Item(name string) (domain.CatalogItem, bool) {
	if i, ok := c.byName[name]; ok {
		return c.items[i], true
	}
	if i, ok := c.byKey[NormalizeName(name)]; ok {
		return c.items[i], true
	}
	return domain.CatalogItem{}, false
}

// ImageURL returns the image of the named item, or "" when unknown
func (c *Catalog) ImageURL(name string) string {
	item, ok := c.Item(name)
	if !ok {
		return ""
	}
	return item.ImageURL
}

// Recipe returns the recipe that crafts name
func (c *Catalog) Recipe(name string) (domain.Recipe, bool) {
	r, ok := c.recipes[name]
	return r, ok
}

// Recipes returns the full recipe table. Callers must not modify it.
func (c *Catalog) Recipes() domain.RecipeBook {
	return c.recipes
}

// Jobs returns the known jobs with their recipe counts
func (c *Catalog) Jobs() []domain.Job {
	return c.jobs
}

// Items lists the catalog entries matching filter, in file order
func (c *Catalog) Items(filter domain.ItemFilter) []domain.CatalogItem {
	out := make([]domain.CatalogItem, 0)
	for _, item := range c.items {
		if filter.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search returns up to limit items whose name resembles query. Exact,
// prefix and substring matches rank first, then close spellings.
func (c *Catalog) Search(query string, limit int) []domain.CatalogItem {
	q := NormalizeName(query)
	if q == "" {
		return []domain.CatalogItem{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	limit = min(limit, MaxSearchLimit)

	type scored struct {
		idx   int
		score float64
	}
	results := make([]scored, 0)
	for i, key := range c.keys {
		var score float64
		switch {
		case key == q:
			score = 1.0
		case strings.HasPrefix(key, q) && len(q) >= minPrefixLength:
			score = 0.9
		case strings.Contains(key, q) && len(q) >= minPrefixLength:
			score = 0.8
		default:
			dist := levenshtein.ComputeDistance(q, key)
			if dist > distanceLimit(len(key)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, scored{idx: i, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return c.items[results[i].idx].Name < c.items[results[j].idx].Name
		}
		return results[i].score > results[j].score
	})

	out := make([]domain.CatalogItem, 0, min(limit, len(results)))
	for _, r := range results {
		if len(out) == limit {
			break
		}
		out = append(out, c.items[r.idx])
	}
	return out
}

// distanceLimit tolerates more typos in longer names
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
