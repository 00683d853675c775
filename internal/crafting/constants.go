package crafting

const (
	// FeasibilityCacheSize bounds the memoized recipe feasibility results.
	FeasibilityCacheSize = 256

	// SortOrderCacheSize bounds the memoized display sort orders.
	SortOrderCacheSize = 64
)

// ErrMsg constants for crafting failures.
const (
	ErrMsgMissingIngredients = "missing ingredients for recipe"
)
