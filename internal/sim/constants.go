package sim

const (
	// PriceEventChance is the daily probability of a new crash or surge
	// starting on a random crop.
	PriceEventChance = 0.2

	// HugHappinessDelta is the happiness gained per hug, clamped to 1.
	HugHappinessDelta = 0.05

	// MaxHappinessBoostsPerDay caps how many hugs benefit a cow per day.
	MaxHappinessBoostsPerDay = 3

	// FertilizerGrowthBonus is the extra watered-day credit a fertilized
	// crop earns on each day it was watered.
	FertilizerGrowthBonus = 0.5

	// FertilizerRangeSize is the spread radius of one fertilizer
	// application (1 covers a 3x3 square around the target plot).
	FertilizerRangeSize = 1

	// SprinklerRangeSize is the watering radius of a placed sprinkler
	// (1 covers the 3x3 square around it, every day, for free).
	SprinklerRangeSize = 1
)

// Money source labels for earned/spent metrics.
const (
	MoneySourceShop   = "shop"
	MoneySourceMarket = "market"
	MoneySourceCattle = "cattle"
)
