// Package crop implements the crop lifecycle model: life-stage progression
// from accumulated watered days against a per-item timetable, and display
// image key resolution for plot contents.
package crop

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/domain"
)

// lifeStageRangeCacheSize bounds the memoized stage ranges. The catalog has
// a handful of distinct timetables; the bound only matters if that grows.
const lifeStageRangeCacheSize = 64

// Model answers pure lifecycle queries against the catalog. Safe for
// concurrent use; the underlying cache is synchronized.
type Model struct {
	catalog *catalog.Catalog

	// Stage ranges are O(timetable length) list builds, memoized by
	// timetable value.
	stageRanges *lru.Cache[domain.CropTimetable, []domain.CropLifeStage]
}

// NewModel creates a lifecycle model backed by the given catalog.
func NewModel(cat *catalog.Catalog) *Model {
	stageRanges, err := lru.New[domain.CropTimetable, []domain.CropLifeStage](lifeStageRangeCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(fmt.Sprintf("crop: stage range cache: %v", err))
	}
	return &Model{catalog: cat, stageRanges: stageRanges}
}

// lifeStageRange returns the ordered day-index → stage sequence for a
// timetable: SeedDays entries of SEED followed by GrowingDays entries of
// GROWING. Indexes past the end mean GROWN.
func (m *Model) lifeStageRange(timetable domain.CropTimetable) []domain.CropLifeStage {
	if cached, ok := m.stageRanges.Get(timetable); ok {
		return cached
	}

	stages := make([]domain.CropLifeStage, 0, timetable.SeedDays+timetable.GrowingDays)
	for i := 0; i < timetable.SeedDays; i++ {
		stages = append(stages, domain.LifeStageSeed)
	}
	for i := 0; i < timetable.GrowingDays; i++ {
		stages = append(stages, domain.LifeStageGrowing)
	}

	m.stageRanges.Add(timetable, stages)
	return stages
}

// LifeStage determines the crop's stage from floor(DaysWatered). A value
// exactly at a stage boundary belongs to the stage of that index, not the
// next one.
func (m *Model) LifeStage(plot *domain.PlotContent) domain.CropLifeStage {
	item := m.catalog.MustItem(plot.ItemID)
	stages := m.lifeStageRange(*item.CropTimetable)

	index := int(math.Floor(plot.DaysWatered))
	if index < len(stages) {
		return stages[index]
	}
	return domain.LifeStageGrown
}

// LifecycleDuration is the total number of watered days from planting to
// grown: the sum of the timetable's stage counts.
func (m *Model) LifecycleDuration(item domain.Item) int {
	return len(m.lifeStageRange(*item.CropTimetable))
}

// PlotContentType resolves the catalog type of a plot's content.
func (m *Model) PlotContentType(plot *domain.PlotContent) domain.ItemType {
	return m.catalog.MustItem(plot.ItemID).Type
}

// ContainsCrop reports whether the plot is non-empty and holds a crop.
func (m *Model) ContainsCrop(plot *domain.PlotContent) bool {
	return plot != nil && m.PlotContentType(plot) == domain.ItemTypeCrop
}

// CropID resolves the display key for a planted crop's type.
func (m *Model) CropID(plot *domain.PlotContent) string {
	item := m.catalog.MustItem(plot.ItemID)
	return m.catalog.CropTypeDisplayKey(item.CropType)
}

// PlotImage resolves the display-image key for a plot. Empty plots resolve
// to ""; non-crop content uses the item's own image; a grown crop uses the
// crop's base key and earlier stages append a stage suffix.
func (m *Model) PlotImage(plot *domain.PlotContent) string {
	if plot == nil {
		return ""
	}

	if m.PlotContentType(plot) != domain.ItemTypeCrop {
		return m.catalog.MustItem(plot.ItemID).ImageID
	}

	stage := m.LifeStage(plot)
	switch stage {
	case domain.LifeStageGrown:
		return m.CropID(plot)
	case domain.LifeStageSeed, domain.LifeStageGrowing:
		return fmt.Sprintf("%s-%s", m.CropID(plot), stageImageSuffix(stage))
	default:
		panic(fmt.Sprintf("crop: unhandled life stage %q", stage))
	}
}

func stageImageSuffix(stage domain.CropLifeStage) string {
	switch stage {
	case domain.LifeStageSeed:
		return "seed"
	case domain.LifeStageGrowing:
		return "growing"
	case domain.LifeStageGrown:
		// Grown crops use the base image key, never a suffix.
		fallthrough
	default:
		panic(fmt.Sprintf("crop: no image suffix for life stage %q", stage))
	}
}
