package cow

// Generation constants. Base weight is a breed mean in pounds; gender skews
// it and variance spreads individuals around it.
const (
	StartingWeightBase     = 1800.0
	StartingWeightVariance = 200.0
	MaleWeightMultiplier   = 1.2
)

// Milk rate bounds in days between milkings. A cow at the maximum weight
// multiplier milks fastest, so the scaling direction is inverted: the
// slowest rate pairs with the minimum weight multiplier.
const (
	MilkRateFastest = 1.0
	MilkRateSlowest = 7.0
)

// Valuation constants. Value per pound decays from the maximum multiplier
// at one day old down to the minimum at MaximumAgeValueDropoff days, then
// stays flat.
const (
	MaximumAgeValueDropoff = 100
	MaximumValueMultiplier = 1.0
	MinimumValueMultiplier = 0.1
)
