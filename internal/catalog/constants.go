package catalog

// Item IDs. These are stable identifiers; display names live on the items.
const (
	ItemCarrotSeed  = "carrot-seed"
	ItemCarrot      = "carrot"
	ItemPumpkinSeed = "pumpkin-seed"
	ItemPumpkin     = "pumpkin"
	ItemSpinachSeed = "spinach-seed"
	ItemSpinach     = "spinach"

	ItemMilk1 = "milk-1"
	ItemMilk2 = "milk-2"
	ItemMilk3 = "milk-3"

	ItemFertilizer = "fertilizer"
	ItemSprinkler  = "sprinkler"

	RecipeCarrotSoup = "carrot-soup"
)

// Error message constants
const (
	ErrMsgDuplicateItemID   = "duplicate item id"
	ErrMsgUnknownGrowsInto  = "grows_into references unknown item"
	ErrMsgMissingTimetable  = "crop item has no timetable"
	ErrMsgUnknownIngredient = "recipe ingredient references unknown item"
)
