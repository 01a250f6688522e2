package domain

// RecipeContribution records which planned item asked for part of a
// requirement, for traceability in the UI.
type RecipeContribution struct {
	ItemName        string `json:"item_name"`
	QuantityNeeded  int    `json:"quantity_needed"`
	DailyProduction int    `json:"daily_production"`
}

// ChainIngredient is a sub-ingredient of a craftable requirement, scaled to
// the requirement's total quantity.
type ChainIngredient struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	ImageURL        string `json:"image_url,omitempty"`
	QuantityPerUnit int    `json:"quantity_per_unit"`
	Quantity        int    `json:"quantity"`
}

// ResourceRequirement is the aggregated need for one ingredient across a plan.
// It is derived data and never persisted.
type ResourceRequirement struct {
	ID              int                  `json:"id"`
	Name            string               `json:"name"`
	ImageURL        string               `json:"image_url,omitempty"`
	TotalQuantity   int                  `json:"total_quantity"`
	IsCraftable     bool                 `json:"is_craftable"`
	Recipes         []RecipeContribution `json:"recipes"`
	IngredientChain []ChainIngredient    `json:"ingredient_chain,omitempty"`
}

// NetRequirement is a requirement together with what is still missing after
// local stock has been taken into account.
type NetRequirement struct {
	ResourceRequirement
	Stock         int `json:"stock"`
	FinalQuantity int `json:"final_quantity"`
}

// IngredientTotal is one line of the shopping list.
type IngredientTotal struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Quantity int    `json:"quantity"`
}
