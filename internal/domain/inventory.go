package domain

// InventorySlot is a stack of one item in the player inventory.
type InventorySlot struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Inventory is the player's item holdings. Slot order is display order.
type Inventory struct {
	Slots []InventorySlot `json:"slots"`
}

// QuantityMap flattens the inventory into an item ID → quantity lookup.
func (inv Inventory) QuantityMap() map[string]int {
	quantities := make(map[string]int, len(inv.Slots))
	for _, slot := range inv.Slots {
		quantities[slot.ItemID] += slot.Quantity
	}
	return quantities
}
