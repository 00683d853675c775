// Package market implements the price event and value adjustment engine:
// daily per-item multipliers reflecting random fluctuation, scheduled
// crashes and surges, and the pricing queries built on them.
package market

import (
	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/crop"
	"github.com/aldenfarms/farmstead/internal/domain"
	"github.com/aldenfarms/farmstead/internal/money"
	"github.com/aldenfarms/farmstead/internal/utils"
)

// Engine answers pricing queries. All randomness flows through the injected
// RNG.
type Engine struct {
	catalog   *catalog.Catalog
	cropModel *crop.Model
	rng       utils.RNG
}

// NewEngine creates a pricing engine.
func NewEngine(cat *catalog.Catalog, cropModel *crop.Model, rng utils.RNG) *Engine {
	return &Engine{catalog: cat, cropModel: cropModel, rng: rng}
}

// GenerateValueAdjustments rolls the day's multiplier for every fluctuating
// catalog item: an active crash pins it to 0.5, an active surge to 1.5, and
// otherwise it is uniform in [0.5, 1.5). Presence in the crash/surge maps is
// what signals "active", not the stored value. Non-fluctuating items never
// get an entry.
func (e *Engine) GenerateValueAdjustments(priceCrashes, priceSurges domain.PriceEvents) domain.ValueAdjustments {
	adjustments := make(domain.ValueAdjustments)
	for _, item := range e.catalog.Items() {
		if !item.DoesPriceFluctuate {
			continue
		}
		if _, crashing := priceCrashes[item.ID]; crashing {
			adjustments[item.ID] = PriceCrashMultiplier
		} else if _, surging := priceSurges[item.ID]; surging {
			adjustments[item.ID] = PriceSurgeMultiplier
		} else {
			adjustments[item.ID] = utils.FloatBetween(e.rng, FluctuationMinimum, FluctuationMaximum)
		}
	}
	return adjustments
}

// PriceEventForCrop seeds a new crash or surge for a crop item, lasting its
// lifecycle duration minus the standard decrease.
func (e *Engine) PriceEventForCrop(cropItem domain.Item) domain.PriceEvent {
	return domain.PriceEvent{
		ItemID:        cropItem.ID,
		DaysRemaining: e.cropModel.LifecycleDuration(cropItem) - PriceEventStandardDurationDecrease,
	}
}

// ItemValue is the item's current dollar value under the adjustments.
// Missing keys and non-fluctuating items default to multiplier 1. The
// result rounds through cents.
func (e *Engine) ItemValue(item domain.Item, adjustments domain.ValueAdjustments) float64 {
	base := money.FromCents(item.Value)

	multiplier, ok := adjustments[item.ID]
	if !ok || !item.DoesPriceFluctuate {
		multiplier = 1
	}
	return money.Multiply(base, multiplier)
}

// AdjustedItemValue is ItemValue looked up by ID, for callers holding only
// an item identifier.
func (e *Engine) AdjustedItemValue(adjustments domain.ValueAdjustments, itemID string) float64 {
	return e.ItemValue(e.catalog.MustItem(itemID), adjustments)
}

// RandomCropItem picks uniformly from the final-stage crop items, used to
// target a new price event.
func (e *Engine) RandomCropItem() domain.Item {
	return utils.Choose(e.rng, e.catalog.FinalStageCropItems())
}

// ResaleValue is what the shop pays for an item it also sells: half the
// base value, rounded through cents.
func (e *Engine) ResaleValue(item domain.Item) float64 {
	return money.Multiply(money.FromCents(item.Value), ResaleRatio)
}

// AffordableQuantity determines how many units can be bought with the
// available balance: the desired quantity when affordable, otherwise the
// maximum affordable count, along with its total cost.
func AffordableQuantity(desired int, unitPrice, balance float64) (quantity int, cost float64) {
	unitCents := money.Cents(unitPrice)
	balanceCents := money.Cents(balance)

	if unitCents == 0 {
		return desired, 0
	}
	if balanceCents < unitCents {
		return 0, 0
	}
	maxAffordable := int(balanceCents / unitCents)
	if desired <= maxAffordable {
		return desired, money.FromCents(int64(desired) * unitCents)
	}
	return maxAffordable, money.FromCents(int64(maxAffordable) * unitCents)
}
