package postgres

// Error Messages - Plan Operations
const (
	ErrMsgFailedToListPlannedItems  = "failed to list planned items"
	ErrMsgFailedToScanPlannedItem   = "failed to scan planned item"
	ErrMsgFailedToGetPlannedItem    = "failed to get planned item"
	ErrMsgFailedToUpsertPlannedItem = "failed to upsert planned item"
	ErrMsgFailedToUpdatePlannedItem = "failed to update planned item"
	ErrMsgFailedToDeletePlannedItem = "failed to delete planned item"
)

// Error Messages - Favorite Operations
const (
	ErrMsgFailedToListFavorites  = "failed to list favorites"
	ErrMsgFailedToAddFavorite    = "failed to add favorite"
	ErrMsgFailedToRemoveFavorite = "failed to remove favorite"
)
