// Package crafting answers recipe feasibility questions against a player
// inventory and orders items for display.
package crafting

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/domain"
)

// itemTypesShownInReverse lists item types whose display order runs from the
// highest value down instead of up.
var itemTypesShownInReverse = map[domain.ItemType]bool{
	domain.ItemTypeMilk: true,
}

// Checker evaluates recipes against inventories. Feasibility and sort
// results are memoized; inventories hash by content so two inventories
// holding the same quantities share a cache entry.
type Checker struct {
	catalog     *catalog.Catalog
	feasibility *lru.Cache[string, bool]
	sortOrders  *lru.Cache[string, []string]
}

func NewChecker(cat *catalog.Catalog) *Checker {
	feasibility, err := lru.New[string, bool](FeasibilityCacheSize)
	if err != nil {
		panic(fmt.Sprintf("crafting: feasibility cache: %v", err))
	}
	sortOrders, err := lru.New[string, []string](SortOrderCacheSize)
	if err != nil {
		panic(fmt.Sprintf("crafting: sort order cache: %v", err))
	}

	return &Checker{
		catalog:     cat,
		feasibility: feasibility,
		sortOrders:  sortOrders,
	}
}

// CanMakeRecipe reports whether the inventory holds at least the required
// quantity of every ingredient. Ingredients absent from the inventory fail
// the check.
func (c *Checker) CanMakeRecipe(recipe domain.Recipe, inventory domain.Inventory) bool {
	key := feasibilityKey(recipe, inventory)
	if feasible, ok := c.feasibility.Get(key); ok {
		return feasible
	}

	quantities := inventory.QuantityMap()
	feasible := true
	for itemID, required := range recipe.Ingredients {
		if quantities[itemID] < required {
			feasible = false
			break
		}
	}

	c.feasibility.Add(key, feasible)
	return feasible
}

// MissingIngredients returns the shortfall per ingredient, keyed by item ID.
// An empty map means the recipe is makeable.
func (c *Checker) MissingIngredients(recipe domain.Recipe, inventory domain.Inventory) map[string]int {
	quantities := inventory.QuantityMap()
	missing := map[string]int{}
	for itemID, required := range recipe.Ingredients {
		if have := quantities[itemID]; have < required {
			missing[itemID] = required - have
		}
	}
	return missing
}

// SortItems orders items for display: crops ahead of everything else, then
// ascending by base value, except types shown in reverse (milk) which run
// descending. The sort is stable, so equal keys keep their incoming order.
func (c *Checker) SortItems(items []domain.Item) []domain.Item {
	byID := make(map[string]domain.Item, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		byID[item.ID] = item
		ids[i] = item.ID
	}

	ordered := c.sortedItemIDs(ids)

	sorted := make([]domain.Item, len(ordered))
	for i, id := range ordered {
		sorted[i] = byID[id]
	}
	return sorted
}

// sortedItemIDs memoizes the two-key ordering per distinct ID list.
func (c *Checker) sortedItemIDs(ids []string) []string {
	key := strings.Join(ids, "\x00")
	if ordered, ok := c.sortOrders.Get(key); ok {
		return ordered
	}

	ordered := make([]string, len(ids))
	copy(ordered, ids)
	sort.SliceStable(ordered, func(i, j int) bool {
		a := c.catalog.MustItem(ordered[i])
		b := c.catalog.MustItem(ordered[j])

		aCrop := a.Type == domain.ItemTypeCrop
		bCrop := b.Type == domain.ItemTypeCrop
		if aCrop != bCrop {
			return aCrop
		}
		return sortValue(a) < sortValue(b)
	})

	c.sortOrders.Add(key, ordered)
	return ordered
}

func sortValue(item domain.Item) int64 {
	if itemTypesShownInReverse[item.Type] {
		return -item.Value
	}
	return item.Value
}

// feasibilityKey combines the recipe identity with a content hash of the
// inventory quantities.
func feasibilityKey(recipe domain.Recipe, inventory domain.Inventory) string {
	quantities := inventory.QuantityMap()
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := fnv.New64a()
	for _, id := range ids {
		fmt.Fprintf(h, "%s=%d;", id, quantities[id])
	}
	return fmt.Sprintf("%s|%x", recipe.ID, h.Sum64())
}
