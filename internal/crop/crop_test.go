package crop

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/domain"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return NewModel(cat)
}

func TestLifeStageBoundaries(t *testing.T) {
	m := newModel(t)

	// Carrot timetable: 2 seed days, 3 growing days.
	tests := []struct {
		daysWatered float64
		expected    domain.CropLifeStage
	}{
		{0, domain.LifeStageSeed},
		{0.5, domain.LifeStageSeed},
		{1, domain.LifeStageSeed},
		{1.99, domain.LifeStageSeed},
		{2, domain.LifeStageGrowing}, // boundary belongs to the stage at that index
		{3, domain.LifeStageGrowing},
		{4.9, domain.LifeStageGrowing},
		{5, domain.LifeStageGrown},
		{17, domain.LifeStageGrown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("daysWatered=%v", tt.daysWatered), func(t *testing.T) {
			plot := domain.NewCrop(catalog.ItemCarrotSeed)
			plot.DaysWatered = tt.daysWatered
			assert.Equal(t, tt.expected, m.LifeStage(plot))
		})
	}
}

func TestLifeStageCoversWholeTimetable(t *testing.T) {
	m := newModel(t)
	cat, err := catalog.New()
	require.NoError(t, err)

	for _, item := range cat.Items() {
		if item.Type != domain.ItemTypeCrop {
			continue
		}
		timetable := *item.CropTimetable

		for day := 0; day < timetable.SeedDays+timetable.GrowingDays; day++ {
			plot := domain.NewCrop(item.ID)
			plot.DaysWatered = float64(day)

			expected := domain.LifeStageGrowing
			if day < timetable.SeedDays {
				expected = domain.LifeStageSeed
			}
			assert.Equal(t, expected, m.LifeStage(plot), "item %s day %d", item.ID, day)
		}
	}
}

func TestLifecycleDuration(t *testing.T) {
	m := newModel(t)
	cat, err := catalog.New()
	require.NoError(t, err)

	carrot := cat.MustItem(catalog.ItemCarrot)
	assert.Equal(t, 5, m.LifecycleDuration(carrot))

	spinach := cat.MustItem(catalog.ItemSpinach)
	assert.Equal(t, 3, m.LifecycleDuration(spinach))

	pumpkin := cat.MustItem(catalog.ItemPumpkin)
	assert.Equal(t, 7, m.LifecycleDuration(pumpkin))
}

func TestPlotImage(t *testing.T) {
	m := newModel(t)

	t.Run("empty plot", func(t *testing.T) {
		assert.Equal(t, "", m.PlotImage(nil))
	})

	t.Run("non-crop content", func(t *testing.T) {
		plot := domain.NewPlotContent(catalog.ItemSprinkler)
		assert.Equal(t, "sprinkler", m.PlotImage(plot))
	})

	t.Run("seed stage", func(t *testing.T) {
		plot := domain.NewCrop(catalog.ItemCarrotSeed)
		assert.Equal(t, "carrot-seed", m.PlotImage(plot))
	})

	t.Run("growing stage", func(t *testing.T) {
		plot := domain.NewCrop(catalog.ItemCarrotSeed)
		plot.DaysWatered = 2
		assert.Equal(t, "carrot-growing", m.PlotImage(plot))
	})

	t.Run("grown stage uses base key", func(t *testing.T) {
		plot := domain.NewCrop(catalog.ItemCarrotSeed)
		plot.DaysWatered = 5
		assert.Equal(t, "carrot", m.PlotImage(plot))
	})
}

func TestPlotContentTypeRoundTrip(t *testing.T) {
	m := newModel(t)
	cat, err := catalog.New()
	require.NoError(t, err)

	// Building plot content from any catalog id and resolving its type
	// recovers the item's catalog type.
	for _, item := range cat.Items() {
		plot := domain.NewPlotContent(item.ID)
		assert.Equal(t, item.Type, m.PlotContentType(plot), "item %s", item.ID)
	}
}

func TestContainsCrop(t *testing.T) {
	m := newModel(t)

	assert.False(t, m.ContainsCrop(nil))
	assert.False(t, m.ContainsCrop(domain.NewPlotContent(catalog.ItemSprinkler)))
	assert.True(t, m.ContainsCrop(domain.NewCrop(catalog.ItemPumpkinSeed)))
}

func TestStageRangeMemoization(t *testing.T) {
	m := newModel(t)

	plot := domain.NewCrop(catalog.ItemCarrotSeed)
	first := m.LifeStage(plot)

	// Same timetable served from cache must give identical results.
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.LifeStage(plot))
	}
	assert.Equal(t, 1, m.stageRanges.Len())

	// A different timetable is a distinct cache entry, not a stale hit.
	pumpkin := domain.NewCrop(catalog.ItemPumpkinSeed)
	assert.Equal(t, domain.LifeStageSeed, m.LifeStage(pumpkin))
	assert.Equal(t, 2, m.stageRanges.Len())
}
