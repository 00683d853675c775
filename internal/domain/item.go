package domain

// ItemType categorizes a catalog entry. Every consumption site switches
// exhaustively over these values.
type ItemType string

const (
	ItemTypeCrop      ItemType = "CROP"
	ItemTypeMilk      ItemType = "MILK"
	ItemTypeFieldTool ItemType = "FIELD_TOOL"
	ItemTypeDish      ItemType = "DISH"
)

// CropType identifies which plant family a crop item belongs to. The catalog
// maps each crop type to the display key used for image resolution.
type CropType string

const (
	CropTypeCarrot  CropType = "CARROT"
	CropTypePumpkin CropType = "PUMPKIN"
	CropTypeSpinach CropType = "SPINACH"
)

// CropTimetable describes how many watered days a crop spends in each
// pre-grown life stage.
type CropTimetable struct {
	SeedDays    int `json:"seed_days" validate:"gte=1"`
	GrowingDays int `json:"growing_days" validate:"gte=1"`
}

// Item represents an immutable catalog entry. Value is stored as integer
// cents; all currency math rounds through cents to avoid float drift.
type Item struct {
	ID                 string   `json:"id" validate:"required"`
	Name               string   `json:"name" validate:"required"`
	Value              int64    `json:"value" validate:"gte=0"` // cents
	Type               ItemType `json:"type" validate:"required,oneof=CROP MILK FIELD_TOOL DISH"`
	DoesPriceFluctuate bool     `json:"does_price_fluctuate"`
	ImageID            string   `json:"image_id" validate:"required"`

	// Crop-only fields. CropTimetable is nil for non-crop items; GrowsInto
	// is set on seed items and names the final-stage item they mature into.
	CropType      CropType       `json:"crop_type,omitempty"`
	CropTimetable *CropTimetable `json:"crop_timetable,omitempty"`
	GrowsInto     string         `json:"grows_into,omitempty"`
}

// IsGrownCrop reports whether the item is a final-stage crop product (a crop
// item with a timetable that does not grow into anything else).
func (i Item) IsGrownCrop() bool {
	return i.Type == ItemTypeCrop && i.CropTimetable != nil && i.GrowsInto == ""
}

// IsFarmProduct reports whether the item is produced on the farm rather
// than only bought (grown crops and milk).
func (i Item) IsFarmProduct() bool {
	return i.IsGrownCrop() || i.Type == ItemTypeMilk
}
