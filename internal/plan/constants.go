package plan

// Log messages
const (
	LogMsgItemAdded          = "Added item to plan"
	LogMsgQuantityUpdated    = "Updated planned quantity"
	LogMsgItemRemoved        = "Removed item from plan"
	LogMsgFavoriteAdded      = "Added favorite"
	LogMsgFavoriteRemoved    = "Removed favorite"
	LogMsgRequirementsBuilt  = "Computed plan requirements"
	LogMsgShoppingListBuilt  = "Built shopping list"
	LogMsgRepositoryFailure  = "Plan repository call failed"
	LogMsgRequirementsCached = "Serving cached requirements"
	LogMsgRequirementsStale  = "Plan changed during aggregation, result not cached"
)

// Error message formats
const (
	ErrMsgUnknownItem      = "%w: %q"
	ErrMsgBadLotSize       = "%w: %w: %d (expected 1, 10 or 100)"
	ErrMsgNegativeQuantity = "%w: %w: %d"
	ErrMsgQuantityTooLarge = "%w: %w: %d exceeds %d per day"
	ErrMsgEmptyAccount     = "%w: account id is required"
)

// Cache defaults
const (
	DefaultCacheSize = 1000
	// CacheSchemaVersion invalidates cached entries when the requirement
	// shape changes between releases
	CacheSchemaVersion = "1.0"
)
