package utils

import "github.com/aldenfarms/farmstead/internal/domain"

// InventoryLookupLinearScanThreshold defines when to switch from linear scan
// to map-based lookup. Linear scan is faster for small batches even with
// large inventories because it avoids map allocation.
const InventoryLookupLinearScanThreshold = 10

// FindSlot finds a slot with the given item ID in an inventory.
// Returns the index of the slot and the quantity found.
// Returns -1, 0 if not found.
func FindSlot(inventory *domain.Inventory, itemID string) (int, int) {
	for i, slot := range inventory.Slots {
		if slot.ItemID == itemID {
			return i, slot.Quantity
		}
	}
	return -1, 0
}

// BuildSlotMap creates a map of item ID to slot index for O(1) lookups.
func BuildSlotMap(inventory *domain.Inventory) map[string]int {
	slotMap := make(map[string]int, len(inventory.Slots))
	for i, slot := range inventory.Slots {
		slotMap[slot.ItemID] = i
	}
	return slotMap
}

// AddItemsToInventory adds multiple items to inventory using a hybrid lookup
// strategy: linear scan for small batches, map-based lookup for larger ones.
// The slotMap parameter is optional and will be created if nil and needed.
func AddItemsToInventory(inventory *domain.Inventory, items []domain.InventorySlot, slotMap map[string]int) {
	if len(items) == 0 {
		return
	}

	useMap := len(items) >= InventoryLookupLinearScanThreshold

	if useMap && slotMap == nil {
		slotMap = BuildSlotMap(inventory)
	}

	for _, item := range items {
		if useMap {
			if idx, exists := slotMap[item.ItemID]; exists {
				inventory.Slots[idx].Quantity += item.Quantity
			} else {
				inventory.Slots = append(inventory.Slots, domain.InventorySlot{ItemID: item.ItemID, Quantity: item.Quantity})
				slotMap[item.ItemID] = len(inventory.Slots) - 1
			}
		} else {
			found := false
			for i := range inventory.Slots {
				if inventory.Slots[i].ItemID == item.ItemID {
					inventory.Slots[i].Quantity += item.Quantity
					found = true
					break
				}
			}
			if !found {
				inventory.Slots = append(inventory.Slots, domain.InventorySlot{ItemID: item.ItemID, Quantity: item.Quantity})
			}
		}
	}
}

// RemoveItemsFromInventory deducts quantity of itemID from the inventory.
// Returns false without mutating when the inventory holds less than the
// requested quantity. Emptied slots are removed to keep display order tight.
func RemoveItemsFromInventory(inventory *domain.Inventory, itemID string, quantity int) bool {
	idx, have := FindSlot(inventory, itemID)
	if idx < 0 || have < quantity {
		return false
	}
	if have == quantity {
		inventory.Slots = append(inventory.Slots[:idx], inventory.Slots[idx+1:]...)
		return true
	}
	inventory.Slots[idx].Quantity -= quantity
	return true
}
