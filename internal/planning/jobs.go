package planning

import (
	"sort"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// GroupByJob buckets the planned items by the job that crafts them.
// Items without a recipe are ignored. Jobs are sorted by daily crafts, then name.
func GroupByJob(items []domain.PlannedItem, recipes domain.RecipeBook) []domain.JobPlan {
	byJob := make(map[string]*domain.JobPlan)
	for _, item := range items {
		recipe, ok := recipes[item.ItemName]
		if !ok || item.DailyQuantity <= 0 {
			continue
		}
		jp, ok := byJob[recipe.Job]
		if !ok {
			jp = &domain.JobPlan{Job: recipe.Job}
			byJob[recipe.Job] = jp
		}
		jp.Items = append(jp.Items, item.ItemName)
		jp.DailyCraft += item.DailyQuantity
		jp.JobLevel = max(jp.JobLevel, recipe.JobLevel)
	}

	out := make([]domain.JobPlan, 0, len(byJob))
	for _, jp := range byJob {
		out = append(out, *jp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DailyCraft != out[j].DailyCraft {
			return out[i].DailyCraft > out[j].DailyCraft
		}
		return out[i].Job < out[j].Job
	})
	return out
}
