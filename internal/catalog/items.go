package catalog

import "github.com/aldenfarms/farmstead/internal/domain"

// itemDefs is the full item catalog in definition order. Values are cents.
// Seed items carry the timetable used while planted; their grown
// counterparts carry the same timetable so lifecycle duration is computable
// from either end (price events are seeded from the grown item).
var itemDefs = []domain.Item{
	// Crops
	{
		ID:                 ItemCarrotSeed,
		Name:               "Carrot Seeds",
		Value:              50,
		Type:               domain.ItemTypeCrop,
		DoesPriceFluctuate: true,
		ImageID:            "carrot-seed",
		CropType:           domain.CropTypeCarrot,
		CropTimetable:      &domain.CropTimetable{SeedDays: 2, GrowingDays: 3},
		GrowsInto:          ItemCarrot,
	},
	{
		ID:                 ItemCarrot,
		Name:               "Carrot",
		Value:              100,
		Type:               domain.ItemTypeCrop,
		DoesPriceFluctuate: true,
		ImageID:            "carrot",
		CropType:           domain.CropTypeCarrot,
		CropTimetable:      &domain.CropTimetable{SeedDays: 2, GrowingDays: 3},
	},
	{
		ID:                 ItemSpinachSeed,
		Name:               "Spinach Seeds",
		Value:              60,
		Type:               domain.ItemTypeCrop,
		DoesPriceFluctuate: true,
		ImageID:            "spinach-seed",
		CropType:           domain.CropTypeSpinach,
		CropTimetable:      &domain.CropTimetable{SeedDays: 1, GrowingDays: 2},
		GrowsInto:          ItemSpinach,
	},
	{
		ID:                 ItemSpinach,
		Name:               "Spinach",
		Value:              125,
		Type:               domain.ItemTypeCrop,
		DoesPriceFluctuate: true,
		ImageID:            "spinach",
		CropType:           domain.CropTypeSpinach,
		CropTimetable:      &domain.CropTimetable{SeedDays: 1, GrowingDays: 2},
	},
	{
		ID:                 ItemPumpkinSeed,
		Name:               "Pumpkin Seeds",
		Value:              100,
		Type:               domain.ItemTypeCrop,
		DoesPriceFluctuate: true,
		ImageID:            "pumpkin-seed",
		CropType:           domain.CropTypePumpkin,
		CropTimetable:      &domain.CropTimetable{SeedDays: 3, GrowingDays: 4},
		GrowsInto:          ItemPumpkin,
	},
	{
		ID:                 ItemPumpkin,
		Name:               "Pumpkin",
		Value:              250,
		Type:               domain.ItemTypeCrop,
		DoesPriceFluctuate: true,
		ImageID:            "pumpkin",
		CropType:           domain.CropTypePumpkin,
		CropTimetable:      &domain.CropTimetable{SeedDays: 3, GrowingDays: 4},
	},

	// Milk tiers, lowest to highest
	{
		ID:                 ItemMilk1,
		Name:               "Grade C Milk",
		Value:              40,
		Type:               domain.ItemTypeMilk,
		DoesPriceFluctuate: true,
		ImageID:            "milk-1",
	},
	{
		ID:                 ItemMilk2,
		Name:               "Grade B Milk",
		Value:              80,
		Type:               domain.ItemTypeMilk,
		DoesPriceFluctuate: true,
		ImageID:            "milk-2",
	},
	{
		ID:                 ItemMilk3,
		Name:               "Grade A Milk",
		Value:              120,
		Type:               domain.ItemTypeMilk,
		DoesPriceFluctuate: true,
		ImageID:            "milk-3",
	},

	// Field tools
	{
		ID:      ItemFertilizer,
		Name:    "Fertilizer",
		Value:   60,
		Type:    domain.ItemTypeFieldTool,
		ImageID: "fertilizer",
	},
	{
		ID:      ItemSprinkler,
		Name:    "Sprinkler",
		Value:   120,
		Type:    domain.ItemTypeFieldTool,
		ImageID: "sprinkler",
	},
}

// recipeDefs lists craftable dishes. Recipes are catalog items too; they
// merge into the same id-keyed map as plain items.
var recipeDefs = []domain.Recipe{
	{
		Item: domain.Item{
			ID:      RecipeCarrotSoup,
			Name:    "Carrot Soup",
			Value:   300,
			Type:    domain.ItemTypeDish,
			ImageID: "carrot-soup",
		},
		Ingredients: map[string]int{ItemCarrot: 4},
	},
}

// shopItemIDs is what the shop sells, in display order.
var shopItemIDs = []string{
	ItemCarrotSeed,
	ItemSpinachSeed,
	ItemPumpkinSeed,
	ItemFertilizer,
	ItemSprinkler,
}

// cropTypeDisplayKeys maps crop types to the base key used for image
// resolution.
var cropTypeDisplayKeys = map[domain.CropType]string{
	domain.CropTypeCarrot:  "carrot",
	domain.CropTypePumpkin: "pumpkin",
	domain.CropTypeSpinach: "spinach",
}
