package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidStockKey   = "Stock keys must be ingredient ids"
)

// Success messages for API responses
const (
	MsgItemRemovedSuccess     = "Item removed from plan"
	MsgFavoriteAddedSuccess   = "Favorite added"
	MsgFavoriteRemovedSuccess = "Favorite removed"
)

// Operation names used in logs
const (
	OpListItems      = "List catalog items"
	OpSearchItems    = "Search catalog"
	OpGetRecipe      = "Get recipe"
	OpListPlan       = "List plan"
	OpAddToPlan      = "Add to plan"
	OpSetQuantity    = "Set quantity"
	OpRemoveFromPlan = "Remove from plan"
	OpJobBreakdown   = "Job breakdown"
	OpListFavorites  = "List favorites"
	OpAddFavorite    = "Add favorite"
	OpRemoveFavorite = "Remove favorite"
	OpRequirements   = "Compute requirements"
	OpNeeds          = "Compute needs"
	OpShoppingList   = "Build shopping list"
)
