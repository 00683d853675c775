// Package catalog holds the static item and recipe registries. The catalog
// is built once at startup, validated, and passed by reference to all
// consumers; nothing mutates it afterwards.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/aldenfarms/farmstead/internal/domain"
)

// Catalog is the immutable item/recipe registry.
type Catalog struct {
	itemsByID   map[string]domain.Item
	itemOrder   []string
	recipesByID map[string]domain.Recipe
	shopByID    map[string]struct{}
	milkTiers   [3]domain.Item
	finalCrops  []domain.Item
}

// New builds and validates the catalog. Definition errors are programming
// errors and surface immediately at startup.
func New() (*Catalog, error) {
	validate := validator.New()

	c := &Catalog{
		itemsByID:   make(map[string]domain.Item, len(itemDefs)+len(recipeDefs)),
		itemOrder:   make([]string, 0, len(itemDefs)+len(recipeDefs)),
		recipesByID: make(map[string]domain.Recipe, len(recipeDefs)),
		shopByID:    make(map[string]struct{}, len(shopItemIDs)),
	}

	for _, item := range itemDefs {
		if err := validate.Struct(item); err != nil {
			return nil, fmt.Errorf("invalid item %q: %w", item.ID, err)
		}
		if err := c.register(item); err != nil {
			return nil, err
		}
	}

	for _, recipe := range recipeDefs {
		if err := validate.Struct(recipe); err != nil {
			return nil, fmt.Errorf("invalid recipe %q: %w", recipe.ID, err)
		}
		if err := c.register(recipe.Item); err != nil {
			return nil, err
		}
		c.recipesByID[recipe.ID] = recipe
	}

	if err := c.checkReferences(); err != nil {
		return nil, err
	}

	for _, id := range shopItemIDs {
		if _, ok := c.itemsByID[id]; !ok {
			return nil, fmt.Errorf("%w: shop inventory id %q", domain.ErrItemNotFound, id)
		}
		c.shopByID[id] = struct{}{}
	}

	for i, id := range []string{ItemMilk1, ItemMilk2, ItemMilk3} {
		milk, ok := c.itemsByID[id]
		if !ok {
			return nil, fmt.Errorf("%w: milk tier %q", domain.ErrItemNotFound, id)
		}
		c.milkTiers[i] = milk
	}

	for _, id := range c.itemOrder {
		if item := c.itemsByID[id]; item.IsGrownCrop() {
			c.finalCrops = append(c.finalCrops, item)
		}
	}

	return c, nil
}

func (c *Catalog) register(item domain.Item) error {
	if _, exists := c.itemsByID[item.ID]; exists {
		return fmt.Errorf("%s: %q", ErrMsgDuplicateItemID, item.ID)
	}
	c.itemsByID[item.ID] = item
	c.itemOrder = append(c.itemOrder, item.ID)
	return nil
}

func (c *Catalog) checkReferences() error {
	for _, id := range c.itemOrder {
		item := c.itemsByID[id]

		if item.Type == domain.ItemTypeCrop && item.CropTimetable == nil {
			return fmt.Errorf("%s: %q", ErrMsgMissingTimetable, id)
		}
		if item.GrowsInto != "" {
			if _, ok := c.itemsByID[item.GrowsInto]; !ok {
				return fmt.Errorf("%s: %q -> %q", ErrMsgUnknownGrowsInto, id, item.GrowsInto)
			}
		}
	}

	for _, recipe := range recipeDefs {
		for ingredientID := range recipe.Ingredients {
			if _, ok := c.itemsByID[ingredientID]; !ok {
				return fmt.Errorf("%s: %q -> %q", ErrMsgUnknownIngredient, recipe.ID, ingredientID)
			}
		}
	}

	return nil
}

// Item looks up a catalog entry by ID. An unknown ID is a programming error
// class; callers with validated IDs use MustItem.
func (c *Catalog) Item(id string) (domain.Item, error) {
	item, ok := c.itemsByID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// MustItem looks up a catalog entry whose ID is already known to be valid.
// It panics on a miss: the catalog is validated at startup, so a miss here
// is a bug, not runtime input.
func (c *Catalog) MustItem(id string) domain.Item {
	item, ok := c.itemsByID[id]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown item id %q", id))
	}
	return item
}

// Items returns all catalog entries in definition order.
func (c *Catalog) Items() []domain.Item {
	items := make([]domain.Item, 0, len(c.itemOrder))
	for _, id := range c.itemOrder {
		items = append(items, c.itemsByID[id])
	}
	return items
}

// Recipe looks up a recipe by ID.
func (c *Catalog) Recipe(id string) (domain.Recipe, error) {
	recipe, ok := c.recipesByID[id]
	if !ok {
		return domain.Recipe{}, fmt.Errorf("%w: %q", domain.ErrRecipeNotFound, id)
	}
	return recipe, nil
}

// Recipes returns all recipes in definition order.
func (c *Catalog) Recipes() []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(recipeDefs))
	for _, def := range recipeDefs {
		recipes = append(recipes, c.recipesByID[def.ID])
	}
	return recipes
}

// ShopInventory returns the items sold in the shop, in display order.
func (c *Catalog) ShopInventory() []domain.Item {
	items := make([]domain.Item, 0, len(shopItemIDs))
	for _, id := range shopItemIDs {
		items = append(items, c.itemsByID[id])
	}
	return items
}

// IsSoldInShop reports whether the shop sells the item.
func (c *Catalog) IsSoldInShop(itemID string) bool {
	_, ok := c.shopByID[itemID]
	return ok
}

// MilkTiers returns the milk items ordered lowest tier first.
func (c *Catalog) MilkTiers() [3]domain.Item {
	return c.milkTiers
}

// FinalStageCropItems returns the grown (non-seed) crop items in definition
// order. Price events pick uniformly from these.
func (c *Catalog) FinalStageCropItems() []domain.Item {
	return c.finalCrops
}

// CropTypeDisplayKey resolves the display key for a crop type.
func (c *Catalog) CropTypeDisplayKey(cropType domain.CropType) string {
	return cropTypeDisplayKeys[cropType]
}
