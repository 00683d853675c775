package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/crop"
	"github.com/aldenfarms/farmstead/internal/domain"
	"github.com/aldenfarms/farmstead/internal/utils"
)

func newEngine(t *testing.T, seed int64) (*Engine, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return NewEngine(cat, crop.NewModel(cat), utils.NewSeededRNG(seed)), cat
}

func TestGenerateValueAdjustments(t *testing.T) {
	e, cat := newEngine(t, 1)

	crashes := domain.PriceEvents{
		catalog.ItemCarrot: {ItemID: catalog.ItemCarrot, DaysRemaining: 2},
	}
	surges := domain.PriceEvents{
		catalog.ItemPumpkin: {ItemID: catalog.ItemPumpkin, DaysRemaining: 3},
		// A surging item that is also crashing stays crashed.
		catalog.ItemCarrot: {ItemID: catalog.ItemCarrot, DaysRemaining: 3},
	}

	adjustments := e.GenerateValueAdjustments(crashes, surges)

	assert.Equal(t, PriceCrashMultiplier, adjustments[catalog.ItemCarrot])
	assert.Equal(t, PriceSurgeMultiplier, adjustments[catalog.ItemPumpkin])

	for _, item := range cat.Items() {
		multiplier, present := adjustments[item.ID]
		if !item.DoesPriceFluctuate {
			assert.False(t, present, "non-fluctuating item %s must have no entry", item.ID)
			continue
		}
		require.True(t, present, "fluctuating item %s must have exactly one entry", item.ID)
		assert.GreaterOrEqual(t, multiplier, FluctuationMinimum)
		assert.Less(t, multiplier, FluctuationMaximum)
	}
}

func TestGenerateValueAdjustmentsPresenceSignalsActive(t *testing.T) {
	e, _ := newEngine(t, 2)

	// Presence, not the stored value, marks an event active.
	crashes := domain.PriceEvents{
		catalog.ItemSpinach: {ItemID: catalog.ItemSpinach, DaysRemaining: 0},
	}

	adjustments := e.GenerateValueAdjustments(crashes, domain.PriceEvents{})
	assert.Equal(t, PriceCrashMultiplier, adjustments[catalog.ItemSpinach])
}

func TestPriceEventForCrop(t *testing.T) {
	e, cat := newEngine(t, 3)

	// Carrot lifecycle is 5 days.
	event := e.PriceEventForCrop(cat.MustItem(catalog.ItemCarrot))
	assert.Equal(t, catalog.ItemCarrot, event.ItemID)
	assert.Equal(t, 5-PriceEventStandardDurationDecrease, event.DaysRemaining)

	// Spinach (3 days) gets a shorter event.
	event = e.PriceEventForCrop(cat.MustItem(catalog.ItemSpinach))
	assert.Equal(t, 3-PriceEventStandardDurationDecrease, event.DaysRemaining)
}

func TestItemValue(t *testing.T) {
	e, cat := newEngine(t, 4)

	carrot := cat.MustItem(catalog.ItemCarrot) // base $1.00
	sprinkler := cat.MustItem(catalog.ItemSprinkler)

	t.Run("missing key defaults to multiplier 1", func(t *testing.T) {
		assert.Equal(t, 1.00, e.ItemValue(carrot, domain.ValueAdjustments{}))
	})

	t.Run("multiplier applies to fluctuating items", func(t *testing.T) {
		adjustments := domain.ValueAdjustments{catalog.ItemCarrot: 1.5}
		assert.Equal(t, 1.50, e.ItemValue(carrot, adjustments))
	})

	t.Run("non-fluctuating items ignore adjustments", func(t *testing.T) {
		adjustments := domain.ValueAdjustments{catalog.ItemSprinkler: 1.5}
		assert.Equal(t, 1.20, e.ItemValue(sprinkler, adjustments))
	})

	t.Run("result rounds through cents", func(t *testing.T) {
		adjustments := domain.ValueAdjustments{catalog.ItemCarrot: 1.0 / 3}
		assert.Equal(t, 0.33, e.ItemValue(carrot, adjustments))
	})
}

func TestAdjustedItemValue(t *testing.T) {
	e, _ := newEngine(t, 5)

	adjustments := domain.ValueAdjustments{catalog.ItemPumpkin: 0.5}
	assert.Equal(t, 1.25, e.AdjustedItemValue(adjustments, catalog.ItemPumpkin))
	assert.Equal(t, 2.50, e.AdjustedItemValue(domain.ValueAdjustments{}, catalog.ItemPumpkin))
}

func TestRandomCropItemOnlyReturnsGrownCrops(t *testing.T) {
	e, _ := newEngine(t, 6)

	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		item := e.RandomCropItem()
		assert.True(t, item.IsGrownCrop())
		seen[item.ID] = true
	}
	// All three grown crops should come up across 300 draws.
	assert.Len(t, seen, 3)
}

func TestResaleValue(t *testing.T) {
	e, cat := newEngine(t, 7)

	assert.Equal(t, 0.60, e.ResaleValue(cat.MustItem(catalog.ItemSprinkler)))
	assert.Equal(t, 0.25, e.ResaleValue(cat.MustItem(catalog.ItemCarrotSeed)))
}

func TestAffordableQuantity(t *testing.T) {
	tests := []struct {
		name         string
		desired      int
		unitPrice    float64
		balance      float64
		wantQuantity int
		wantCost     float64
	}{
		{"fully affordable", 3, 0.50, 5, 3, 1.50},
		{"capped by balance", 10, 0.50, 2.25, 4, 2.00},
		{"cannot afford one", 1, 5, 2, 0, 0},
		{"zero price is free", 7, 0, 0, 7, 0},
		{"exact balance", 4, 0.25, 1, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantity, cost := AffordableQuantity(tt.desired, tt.unitPrice, tt.balance)
			assert.Equal(t, tt.wantQuantity, quantity)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}
