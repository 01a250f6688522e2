package bootstrap

import (
	"fmt"
	"os"

	"github.com/osse101/DofusPlanner_Go/internal/catalog"
	"github.com/osse101/DofusPlanner_Go/internal/config"
)

// LoadCatalog reads the item, recipe and job files below cfg.DataDir
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(os.DirFS(cfg.DataDir), catalog.Paths{
		Items:   cfg.ItemsPath,
		Recipes: cfg.RecipesPath,
		Jobs:    cfg.JobsPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return cat, nil
}
