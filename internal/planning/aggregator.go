package planning

import (
	"math"
	"sort"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// ImageResolver resolves a display image for an item name.
// An empty string means no image is known.
type ImageResolver interface {
	ImageURL(name string) string
}

// noImages is used when no catalog is supplied
type noImages struct{}

func (noImages) ImageURL(string) string { return "" }

// ComputeRequirements expands the planned items through the recipe table and
// sums the ingredient needs by ingredient id.
//
// Planned items without a recipe, or with a non-positive daily quantity,
// contribute nothing. Craftable ingredients carry a single level of their own
// recipe, scaled by the combined total. The result is sorted by total
// quantity, largest first; ties keep first-encounter order.
func ComputeRequirements(items []domain.PlannedItem, recipes domain.RecipeBook, images ImageResolver) []domain.ResourceRequirement {
	if images == nil {
		images = noImages{}
	}

	byID := make(map[int]*domain.ResourceRequirement)
	order := make([]int, 0)

	for _, item := range items {
		if item.DailyQuantity <= 0 {
			continue
		}
		recipe, ok := recipes[item.ItemName]
		if !ok {
			continue
		}

		for _, ing := range recipe.Ingredients {
			needed := mulCapped(ing.QuantityPerUnit, item.DailyQuantity)
			if needed <= 0 {
				continue
			}

			req, seen := byID[ing.ID]
			if !seen {
				req = &domain.ResourceRequirement{
					ID:          ing.ID,
					Name:        ing.Name,
					ImageURL:    images.ImageURL(ing.Name),
					IsCraftable: recipes.Craftable(ing.Name),
					Recipes:     make([]domain.RecipeContribution, 0, 1),
				}
				byID[ing.ID] = req
				order = append(order, ing.ID)
			}

			req.TotalQuantity = addCapped(req.TotalQuantity, needed)
			req.Recipes = append(req.Recipes, domain.RecipeContribution{
				ItemName:        item.ItemName,
				QuantityNeeded:  needed,
				DailyProduction: item.DailyQuantity,
			})
		}
	}

	result := make([]domain.ResourceRequirement, 0, len(order))
	for _, id := range order {
		req := byID[id]
		if req.IsCraftable {
			req.IngredientChain = expandChain(recipes[req.Name], req.TotalQuantity, images)
		}
		result = append(result, *req)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalQuantity > result[j].TotalQuantity
	})

	return result
}

// expandChain returns recipe's ingredients scaled to produce units items.
// It never looks past the first level.
func expandChain(recipe domain.Recipe, units int, images ImageResolver) []domain.ChainIngredient {
	chain := make([]domain.ChainIngredient, 0, len(recipe.Ingredients))
	for _, sub := range recipe.Ingredients {
		chain = append(chain, domain.ChainIngredient{
			ID:              sub.ID,
			Name:            sub.Name,
			ImageURL:        images.ImageURL(sub.Name),
			QuantityPerUnit: sub.QuantityPerUnit,
			Quantity:        mulCapped(sub.QuantityPerUnit, units),
		})
	}
	return chain
}

// mulCapped multiplies two non-negative quantities, saturating at math.MaxInt.
func mulCapped(a, b int) int {
	if a <= 0 || b <= 0 {
		return a * b
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// addCapped adds two non-negative quantities, saturating at math.MaxInt.
func addCapped(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// NetAgainstStock returns what is still needed of req once the locally owned
// stock is deducted. Never negative.
func NetAgainstStock(req domain.ResourceRequirement, stock LocalStock) int {
	return max(0, req.TotalQuantity-stock.Get(req.ID))
}

// NetAll pairs every requirement with its post-stock quantity, preserving order.
func NetAll(reqs []domain.ResourceRequirement, stock LocalStock) []domain.NetRequirement {
	out := make([]domain.NetRequirement, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, domain.NetRequirement{
			ResourceRequirement: req,
			Stock:               stock.Get(req.ID),
			FinalQuantity:       NetAgainstStock(req, stock),
		})
	}
	return out
}
