package domain

// Ingredient is one line of a recipe: how many units of an ingredient are
// consumed to craft a single unit of the target item.
type Ingredient struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	QuantityPerUnit int    `json:"quantity_per_unit"`
}

// Recipe describes how an item is crafted. Recipes are keyed by the crafted
// item's display name.
type Recipe struct {
	ItemName    string       `json:"item_name"`
	HasRecipe   bool         `json:"has_recipe"`
	Job         string       `json:"job"`
	JobLevel    int          `json:"job_level"`
	Ingredients []Ingredient `json:"ingredients"`
}

// RecipeBook is the immutable recipe table, keyed by crafted item name.
type RecipeBook map[string]Recipe

// Craftable reports whether name has a recipe entry flagged as craftable.
func (b RecipeBook) Craftable(name string) bool {
	r, ok := b[name]
	return ok && r.HasRecipe
}

// Job is a crafting profession (Paysan, Boulanger, ...).
type Job struct {
	Name        string `json:"name"`
	ImageURL    string `json:"image_url,omitempty"`
	RecipeCount int    `json:"recipe_count"`
}
