package domain

// ValueAdjustments maps item ID to a price multiplier (1.0 = no adjustment).
// Regenerated once per in-game day. Every fluctuating item has exactly one
// entry after generation; non-fluctuating items are absent and readers must
// default their multiplier to 1.
type ValueAdjustments map[string]float64

// PriceEvent is a scheduled crash or surge affecting one item. DaysRemaining
// is decremented by the day-tick handler; the event ends at 0.
type PriceEvent struct {
	ItemID        string `json:"item_id"`
	DaysRemaining int    `json:"days_remaining"`
}

// PriceEvents is keyed by item ID. Presence signals an active event.
type PriceEvents map[string]PriceEvent
