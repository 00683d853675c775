package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenfarms/farmstead/internal/domain"
)

func TestNewCreatesEmptyGrid(t *testing.T) {
	f := New(10, 6)

	assert.Equal(t, 10, f.Rows())
	assert.Equal(t, 6, f.Cols())

	count := 0
	f.ForEach(func(_, _ int, plot *domain.PlotContent) {
		assert.Nil(t, plot)
		count++
	})
	assert.Equal(t, 60, count)
}

func TestAtAndSet(t *testing.T) {
	f := New(3, 3)
	crop := domain.NewCrop("carrot-seed")

	f.Set(1, 2, crop)
	assert.Same(t, crop, f.At(1, 2))

	f.Set(1, 2, nil)
	assert.Nil(t, f.At(1, 2))
}

func TestOutOfBoundsAccess(t *testing.T) {
	f := New(2, 2)

	assert.Nil(t, f.At(-1, 0))
	assert.Nil(t, f.At(0, -1))
	assert.Nil(t, f.At(2, 0))
	assert.Nil(t, f.At(0, 2))

	// Out-of-bounds writes are ignored, not panics.
	assert.NotPanics(t, func() { f.Set(5, 5, domain.NewCrop("carrot-seed")) })
}

func TestRangeCoords(t *testing.T) {
	t.Run("range 1 around center", func(t *testing.T) {
		coords := RangeCoords(1, 2, 3)

		require.Len(t, coords, 3)
		for _, row := range coords {
			require.Len(t, row, 3)
		}

		assert.Equal(t, Coord{X: 1, Y: 2}, coords[0][0])
		assert.Equal(t, Coord{X: 2, Y: 3}, coords[1][1])
		assert.Equal(t, Coord{X: 3, Y: 4}, coords[2][2])
	})

	t.Run("range 0 is just the center", func(t *testing.T) {
		coords := RangeCoords(0, 4, 4)
		require.Len(t, coords, 1)
		require.Len(t, coords[0], 1)
		assert.Equal(t, Coord{X: 4, Y: 4}, coords[0][0])
	})

	t.Run("coordinates may be out of bounds", func(t *testing.T) {
		coords := RangeCoords(1, 0, 0)
		assert.Equal(t, Coord{X: -1, Y: -1}, coords[0][0])
	})
}

func TestFindInField(t *testing.T) {
	f := New(3, 3)
	q := NewQueries()

	isCarrot := q.RegisterPredicate(func(plot *domain.PlotContent) bool {
		return plot != nil && plot.ItemID == "carrot-seed"
	})

	assert.Nil(t, q.FindInField(f, isCarrot))

	crop := domain.NewCrop("carrot-seed")
	f.Set(2, 1, crop)
	assert.Same(t, crop, q.FindInField(f, isCarrot))
}

func TestFindInFieldRowMajorOrder(t *testing.T) {
	f := New(3, 3)
	q := NewQueries()

	first := domain.NewCrop("carrot-seed")
	second := domain.NewCrop("carrot-seed")
	f.Set(2, 0, first)
	f.Set(0, 1, second)

	anyCrop := q.RegisterPredicate(func(plot *domain.PlotContent) bool {
		return plot != nil
	})

	assert.Same(t, first, q.FindInField(f, anyCrop))
}

func TestCrops(t *testing.T) {
	f := New(3, 3)
	q := NewQueries()

	f.Set(0, 0, domain.NewCrop("carrot-seed"))
	f.Set(1, 1, domain.NewCrop("pumpkin-seed"))
	f.Set(2, 2, domain.NewPlotContent("sprinkler"))

	nonEmpty := q.RegisterPredicate(func(plot *domain.PlotContent) bool {
		return plot != nil
	})

	assert.Len(t, q.Crops(f, nonEmpty), 3)
}

func TestQueryCacheInvalidatesOnFieldChange(t *testing.T) {
	f := New(2, 2)
	q := NewQueries()

	nonEmpty := q.RegisterPredicate(func(plot *domain.PlotContent) bool {
		return plot != nil
	})

	assert.Nil(t, q.FindInField(f, nonEmpty))

	// Mutating the field must not serve the cached miss.
	crop := domain.NewCrop("carrot-seed")
	f.Set(0, 0, crop)
	assert.Same(t, crop, q.FindInField(f, nonEmpty))

	// Mutating crop state (not just occupancy) also changes the snapshot.
	cropsBefore := q.Crops(f, nonEmpty)
	crop.DaysWatered += 0.5
	cropsAfter := q.Crops(f, nonEmpty)
	assert.Equal(t, len(cropsBefore), len(cropsAfter))
	assert.Equal(t, 0.5, cropsAfter[0].DaysWatered)
}

func TestAdjacentNumericFieldsAreDistinctSnapshots(t *testing.T) {
	f := New(1, 1)
	q := NewQueries()

	watered := q.RegisterPredicate(func(plot *domain.PlotContent) bool {
		return plot != nil && plot.DaysWatered >= 5
	})

	// These two states concatenate to the same digits ("1"+"20" vs
	// "12"+"0") and must still hash to different snapshots.
	f.Set(0, 0, &domain.PlotContent{ItemID: "carrot-seed", DaysOld: 1, DaysWatered: 20})
	assert.NotNil(t, q.FindInField(f, watered))

	f.Set(0, 0, &domain.PlotContent{ItemID: "carrot-seed", DaysOld: 12, DaysWatered: 0})
	assert.Nil(t, q.FindInField(f, watered))
}

func TestDistinctPredicatesAreDistinctCacheKeys(t *testing.T) {
	f := New(2, 2)
	q := NewQueries()

	f.Set(0, 0, domain.NewCrop("carrot-seed"))

	// Structurally identical closures must not collide.
	always := q.RegisterPredicate(func(plot *domain.PlotContent) bool { return true })
	never := q.RegisterPredicate(func(plot *domain.PlotContent) bool { return false })

	assert.NotNil(t, q.FindInField(f, always))
	assert.Nil(t, q.FindInField(f, never))
}

func TestUnregisteredPredicatePanics(t *testing.T) {
	f := New(1, 1)
	q := NewQueries()

	assert.Panics(t, func() { q.FindInField(f, PredicateToken(99)) })
}
