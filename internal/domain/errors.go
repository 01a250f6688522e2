package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Plan errors
	ErrMsgPlannedItemNotFound = "planned item not found"
	ErrMsgInvalidQuantity     = "invalid quantity"
	ErrMsgInvalidLotSize      = "invalid lot size"

	// Favorite errors
	ErrMsgFavoriteNotFound = "favorite not found"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgInvalidRecipe  = "invalid recipe"

	// Account errors
	ErrMsgInvalidAccount = "invalid account"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrPlannedItemNotFound = errors.New(ErrMsgPlannedItemNotFound)
	ErrInvalidQuantity     = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidLotSize      = errors.New(ErrMsgInvalidLotSize)

	ErrFavoriteNotFound = errors.New(ErrMsgFavoriteNotFound)

	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe  = errors.New(ErrMsgInvalidRecipe)

	ErrInvalidAccount = errors.New(ErrMsgInvalidAccount)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
