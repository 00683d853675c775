package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenfarms/farmstead/internal/domain"
)

func TestFindSlot(t *testing.T) {
	inv := &domain.Inventory{Slots: []domain.InventorySlot{
		{ItemID: "carrot", Quantity: 3},
		{ItemID: "pumpkin", Quantity: 1},
	}}

	idx, qty := FindSlot(inv, "pumpkin")
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, qty)

	idx, qty = FindSlot(inv, "spinach")
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0, qty)
}

func TestAddItemsToInventoryLinearScan(t *testing.T) {
	inv := &domain.Inventory{Slots: []domain.InventorySlot{{ItemID: "carrot", Quantity: 2}}}

	AddItemsToInventory(inv, []domain.InventorySlot{
		{ItemID: "carrot", Quantity: 3},
		{ItemID: "pumpkin", Quantity: 1},
	}, nil)

	require.Len(t, inv.Slots, 2)
	assert.Equal(t, 5, inv.Slots[0].Quantity)
	assert.Equal(t, "pumpkin", inv.Slots[1].ItemID)
}

func TestAddItemsToInventoryMapLookup(t *testing.T) {
	inv := &domain.Inventory{}

	// Batch large enough to take the map-based path.
	items := make([]domain.InventorySlot, 0, InventoryLookupLinearScanThreshold+2)
	for i := 0; i < InventoryLookupLinearScanThreshold+2; i++ {
		items = append(items, domain.InventorySlot{ItemID: fmt.Sprintf("item-%d", i%4), Quantity: 1})
	}

	AddItemsToInventory(inv, items, nil)

	require.Len(t, inv.Slots, 4)
	total := 0
	for _, slot := range inv.Slots {
		total += slot.Quantity
	}
	assert.Equal(t, len(items), total)
}

func TestRemoveItemsFromInventory(t *testing.T) {
	newInv := func() *domain.Inventory {
		return &domain.Inventory{Slots: []domain.InventorySlot{
			{ItemID: "carrot", Quantity: 3},
			{ItemID: "milk-1", Quantity: 1},
		}}
	}

	t.Run("partial removal keeps slot", func(t *testing.T) {
		inv := newInv()
		assert.True(t, RemoveItemsFromInventory(inv, "carrot", 2))
		idx, qty := FindSlot(inv, "carrot")
		assert.Equal(t, 0, idx)
		assert.Equal(t, 1, qty)
	})

	t.Run("full removal drops slot", func(t *testing.T) {
		inv := newInv()
		assert.True(t, RemoveItemsFromInventory(inv, "milk-1", 1))
		assert.Len(t, inv.Slots, 1)
	})

	t.Run("insufficient quantity does not mutate", func(t *testing.T) {
		inv := newInv()
		assert.False(t, RemoveItemsFromInventory(inv, "carrot", 4))
		_, qty := FindSlot(inv, "carrot")
		assert.Equal(t, 3, qty)
	})

	t.Run("missing item", func(t *testing.T) {
		inv := newInv()
		assert.False(t, RemoveItemsFromInventory(inv, "spinach", 1))
	})
}
