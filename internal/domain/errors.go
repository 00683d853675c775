package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Catalog errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgRecipeNotFound = "recipe not found"

	// Invariant errors
	ErrMsgInvariantViolation = "invariant violation"

	// Economy errors
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgNotSellable          = "item is not sellable"
	ErrMsgNotSoldInShop        = "item is not sold in the shop"

	// Field errors
	ErrMsgPlotOccupied    = "plot is occupied"
	ErrMsgPlotEmpty       = "plot is empty"
	ErrMsgPlotOutOfBounds = "plot is out of bounds"
	ErrMsgCropNotGrown    = "crop is not grown"

	// Cow errors
	ErrMsgCowNotFound    = "cow not found"
	ErrMsgCowNotMilkable = "cow cannot be milked"

	// Input errors
	ErrMsgInvalidQuantity = "quantity must be positive"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// Catalog errors. An unknown item ID is a programming error class and
	// fails fast; the engine does not defend against a corrupt catalog.
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Invariant errors signal contract violations (e.g. happiness outside
	// [0, 1]), distinct from representable results.
	ErrInvariantViolation = errors.New(ErrMsgInvariantViolation)

	// Economy errors
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrNotSellable          = errors.New(ErrMsgNotSellable)
	ErrNotSoldInShop        = errors.New(ErrMsgNotSoldInShop)

	// Field errors
	ErrPlotOccupied    = errors.New(ErrMsgPlotOccupied)
	ErrPlotEmpty       = errors.New(ErrMsgPlotEmpty)
	ErrPlotOutOfBounds = errors.New(ErrMsgPlotOutOfBounds)
	ErrCropNotGrown    = errors.New(ErrMsgCropNotGrown)

	// Cow errors
	ErrCowNotFound    = errors.New(ErrMsgCowNotFound)
	ErrCowNotMilkable = errors.New(ErrMsgCowNotMilkable)

	// Input errors
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
