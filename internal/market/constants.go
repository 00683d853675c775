package market

// Fixed multipliers for scheduled price events, and the bounds of the daily
// random fluctuation.
const (
	PriceCrashMultiplier = 0.5
	PriceSurgeMultiplier = 1.5

	FluctuationMinimum = 0.5
	FluctuationMaximum = 1.5
)

// PriceEventStandardDurationDecrease shortens a new price event relative to
// the crop's lifecycle: shorter-cycle crops get shorter events.
const PriceEventStandardDurationDecrease = 2

// ResaleRatio is the fraction of base value the shop pays for items it also
// sells.
const ResaleRatio = 0.5
