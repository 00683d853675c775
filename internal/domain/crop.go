package domain

// CropLifeStage is the growth stage of a planted crop, derived from
// accumulated watered days against the item's timetable.
type CropLifeStage string

const (
	LifeStageSeed    CropLifeStage = "SEED"
	LifeStageGrowing CropLifeStage = "GROWING"
	LifeStageGrown   CropLifeStage = "GROWN"
)

// PlotContent occupies a single field cell. Crop state fields are zero for
// non-crop content; whether the content is a crop is derived from the
// catalog type of ItemID, never stored.
//
// DaysOld and DaysWatered advance only through the day-tick handler.
// DaysWatered may increase by fractional amounts when a plot is partially
// watered (sprinkler coverage).
type PlotContent struct {
	ItemID          string  `json:"item_id"`
	DaysOld         int     `json:"days_old"`
	DaysWatered     float64 `json:"days_watered"`
	IsFertilized    bool    `json:"is_fertilized"`
	WasWateredToday bool    `json:"was_watered_today"`
}

// NewPlotContent returns plot content for a non-crop placement.
func NewPlotContent(itemID string) *PlotContent {
	return &PlotContent{ItemID: itemID}
}

// NewCrop returns freshly planted plot content with zeroed growth state.
func NewCrop(itemID string) *PlotContent {
	return &PlotContent{
		ItemID:      itemID,
		DaysOld:     0,
		DaysWatered: 0,
	}
}
