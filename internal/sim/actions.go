package sim

import (
	"context"
	"fmt"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/cow"
	"github.com/aldenfarms/farmstead/internal/domain"
	"github.com/aldenfarms/farmstead/internal/field"
	"github.com/aldenfarms/farmstead/internal/logger"
	"github.com/aldenfarms/farmstead/internal/market"
	"github.com/aldenfarms/farmstead/internal/metrics"
	"github.com/aldenfarms/farmstead/internal/money"
	"github.com/aldenfarms/farmstead/internal/utils"
)

// PlantSeed places a fresh crop on an empty plot, consuming one seed from
// the inventory.
func (s *service) PlantSeed(ctx context.Context, state *State, x, y int, seedID string) error {
	if !state.Field.InBounds(x, y) {
		return fmt.Errorf("plant at (%d, %d): %w", x, y, domain.ErrPlotOutOfBounds)
	}
	if state.Field.At(x, y) != nil {
		return fmt.Errorf("plant at (%d, %d): %w", x, y, domain.ErrPlotOccupied)
	}

	seed, err := s.catalog.Item(seedID)
	if err != nil {
		return fmt.Errorf("plant %s: %w", seedID, err)
	}
	if seed.Type != domain.ItemTypeCrop || seed.GrowsInto == "" {
		return fmt.Errorf("plant %s: not a seed: %w", seedID, domain.ErrInvalidInput)
	}
	if !utils.RemoveItemsFromInventory(&state.Inventory, seedID, 1) {
		return fmt.Errorf("plant %s: %w", seedID, domain.ErrInsufficientQuantity)
	}

	state.Field.Set(x, y, domain.NewCrop(seedID))
	metrics.CropsPlanted.WithLabelValues(seedID).Inc()
	logger.FromContext(ctx).Debug("seed planted", "item", seedID, "x", x, "y", y)
	return nil
}

// PlaceSprinkler installs a sprinkler on an empty plot, consuming one from
// the inventory. The day tick waters every crop in the sprinkler's range.
func (s *service) PlaceSprinkler(ctx context.Context, state *State, x, y int) error {
	if !state.Field.InBounds(x, y) {
		return fmt.Errorf("place sprinkler at (%d, %d): %w", x, y, domain.ErrPlotOutOfBounds)
	}
	if state.Field.At(x, y) != nil {
		return fmt.Errorf("place sprinkler at (%d, %d): %w", x, y, domain.ErrPlotOccupied)
	}
	if !utils.RemoveItemsFromInventory(&state.Inventory, catalog.ItemSprinkler, 1) {
		return fmt.Errorf("place sprinkler: %w", domain.ErrInsufficientQuantity)
	}

	state.Field.Set(x, y, domain.NewPlotContent(catalog.ItemSprinkler))
	logger.FromContext(ctx).Debug("sprinkler placed", "x", x, "y", y)
	return nil
}

// WaterPlot marks the crop at (x, y) as watered for today.
func (s *service) WaterPlot(ctx context.Context, state *State, x, y int) error {
	if !state.Field.InBounds(x, y) {
		return fmt.Errorf("water at (%d, %d): %w", x, y, domain.ErrPlotOutOfBounds)
	}
	plot := state.Field.At(x, y)
	if !s.crops.ContainsCrop(plot) {
		return fmt.Errorf("water at (%d, %d): %w", x, y, domain.ErrPlotEmpty)
	}
	plot.WasWateredToday = true
	return nil
}

// WaterAllPlots waters every crop on the field.
func (s *service) WaterAllPlots(ctx context.Context, state *State) {
	watered := 0
	state.Field.ForEach(func(x, y int, plot *domain.PlotContent) {
		if s.crops.ContainsCrop(plot) {
			plot.WasWateredToday = true
			watered++
		}
	})
	logger.FromContext(ctx).Debug("all plots watered", "count", watered)
}

// FertilizePlot consumes one fertilizer and marks every crop in the spread
// square around (x, y) as fertilized. The target plot must hold a crop;
// out-of-bounds spread coordinates are skipped.
func (s *service) FertilizePlot(ctx context.Context, state *State, x, y int) error {
	if !state.Field.InBounds(x, y) {
		return fmt.Errorf("fertilize at (%d, %d): %w", x, y, domain.ErrPlotOutOfBounds)
	}
	if !s.crops.ContainsCrop(state.Field.At(x, y)) {
		return fmt.Errorf("fertilize at (%d, %d): %w", x, y, domain.ErrPlotEmpty)
	}
	if !utils.RemoveItemsFromInventory(&state.Inventory, catalog.ItemFertilizer, 1) {
		return fmt.Errorf("fertilize: %w", domain.ErrInsufficientQuantity)
	}

	for _, row := range field.RangeCoords(FertilizerRangeSize, x, y) {
		for _, coord := range row {
			plot := state.Field.At(coord.X, coord.Y)
			if s.crops.ContainsCrop(plot) {
				plot.IsFertilized = true
			}
		}
	}
	logger.FromContext(ctx).Debug("plot fertilized", "x", x, "y", y)
	return nil
}

// HarvestPlot clears a grown crop and adds its final-stage item to the
// inventory. Only GROWN crops can be harvested.
func (s *service) HarvestPlot(ctx context.Context, state *State, x, y int) (domain.Item, error) {
	if !state.Field.InBounds(x, y) {
		return domain.Item{}, fmt.Errorf("harvest at (%d, %d): %w", x, y, domain.ErrPlotOutOfBounds)
	}
	plot := state.Field.At(x, y)
	if !s.crops.ContainsCrop(plot) {
		return domain.Item{}, fmt.Errorf("harvest at (%d, %d): %w", x, y, domain.ErrPlotEmpty)
	}
	if s.crops.LifeStage(plot) != domain.LifeStageGrown {
		return domain.Item{}, fmt.Errorf("harvest at (%d, %d): %w", x, y, domain.ErrCropNotGrown)
	}

	planted := s.catalog.MustItem(plot.ItemID)
	harvested := planted
	if planted.GrowsInto != "" {
		harvested = s.catalog.MustItem(planted.GrowsInto)
	}

	utils.AddItemsToInventory(&state.Inventory, []domain.InventorySlot{{ItemID: harvested.ID, Quantity: 1}}, nil)
	state.Field.Set(x, y, nil)
	metrics.CropsHarvested.WithLabelValues(harvested.ID).Inc()
	logger.FromContext(ctx).Debug("crop harvested", "item", harvested.ID, "x", x, "y", y)
	return harvested, nil
}

// ClearPlot removes whatever occupies (x, y), discarding it.
func (s *service) ClearPlot(ctx context.Context, state *State, x, y int) error {
	if !state.Field.InBounds(x, y) {
		return fmt.Errorf("clear at (%d, %d): %w", x, y, domain.ErrPlotOutOfBounds)
	}
	if state.Field.At(x, y) == nil {
		return fmt.Errorf("clear at (%d, %d): %w", x, y, domain.ErrPlotEmpty)
	}
	state.Field.Set(x, y, nil)
	return nil
}

// BuyItem purchases quantity units of a shop item at the day's adjusted
// price. The purchase is all-or-nothing.
func (s *service) BuyItem(ctx context.Context, state *State, itemID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("buy %s x%d: %w", itemID, quantity, domain.ErrInvalidQuantity)
	}
	item, err := s.catalog.Item(itemID)
	if err != nil {
		return fmt.Errorf("buy %s: %w", itemID, err)
	}
	if !s.catalog.IsSoldInShop(itemID) {
		return fmt.Errorf("buy %s: %w", itemID, domain.ErrNotSoldInShop)
	}

	unitPrice := s.market.ItemValue(item, state.ValueAdjustments)
	cost := money.FromCents(money.Cents(unitPrice) * int64(quantity))
	if money.Cents(cost) > money.Cents(state.Money) {
		return fmt.Errorf("buy %s x%d for %s: %w", itemID, quantity, money.String(cost), domain.ErrInsufficientFunds)
	}

	debitMoney(state, cost)
	utils.AddItemsToInventory(&state.Inventory, []domain.InventorySlot{{ItemID: itemID, Quantity: quantity}}, nil)
	metrics.ItemsBought.WithLabelValues(itemID).Add(float64(quantity))
	metrics.MoneySpent.WithLabelValues(MoneySourceShop).Add(float64(money.Cents(cost)))
	logger.FromContext(ctx).Info("items bought", "item", itemID, "quantity", quantity, "cost", money.String(cost))
	return nil
}

// SellItem sells quantity units from the inventory. Price-fluctuating items
// sell at the day's adjusted value; everything else sells at resale value.
func (s *service) SellItem(ctx context.Context, state *State, itemID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("sell %s x%d: %w", itemID, quantity, domain.ErrInvalidQuantity)
	}
	item, err := s.catalog.Item(itemID)
	if err != nil {
		return fmt.Errorf("sell %s: %w", itemID, err)
	}
	if item.Value <= 0 {
		return fmt.Errorf("sell %s: %w", itemID, domain.ErrNotSellable)
	}

	unitPrice := s.market.ResaleValue(item)
	if item.DoesPriceFluctuate {
		unitPrice = s.market.ItemValue(item, state.ValueAdjustments)
	}
	if !utils.RemoveItemsFromInventory(&state.Inventory, itemID, quantity) {
		return fmt.Errorf("sell %s x%d: %w", itemID, quantity, domain.ErrInsufficientQuantity)
	}

	proceeds := money.FromCents(money.Cents(unitPrice) * int64(quantity))
	creditMoney(state, proceeds)
	metrics.ItemsSold.WithLabelValues(itemID).Add(float64(quantity))
	metrics.MoneyEarned.WithLabelValues(MoneySourceMarket).Add(float64(money.Cents(proceeds)))
	logger.FromContext(ctx).Info("items sold", "item", itemID, "quantity", quantity, "proceeds", money.String(proceeds))
	return nil
}

// BuyCow purchases the cow currently on offer at its generated value and
// puts a new cow up for sale.
func (s *service) BuyCow(ctx context.Context, state *State) error {
	if state.CowForSale == nil {
		return fmt.Errorf("buy cow: %w", domain.ErrCowNotFound)
	}
	price := cow.Value(*state.CowForSale)
	if money.Cents(price) > money.Cents(state.Money) {
		return fmt.Errorf("buy cow %s for %s: %w", state.CowForSale.Name, money.String(price), domain.ErrInsufficientFunds)
	}

	debitMoney(state, price)
	state.Cows = append(state.Cows, *state.CowForSale)
	metrics.MoneySpent.WithLabelValues(MoneySourceCattle).Add(float64(money.Cents(price)))
	logger.FromContext(ctx).Info("cow bought", "cow", state.CowForSale.Name, "price", money.String(price))

	offer := s.cows.Generate(cow.Options{})
	state.CowForSale = &offer
	metrics.CowsGenerated.Inc()
	return nil
}

// SellCow sells a herd cow at its current value.
func (s *service) SellCow(ctx context.Context, state *State, cowID string) error {
	for i := range state.Cows {
		if state.Cows[i].ID != cowID {
			continue
		}
		proceeds := cow.Value(state.Cows[i])
		creditMoney(state, proceeds)
		state.Cows = append(state.Cows[:i], state.Cows[i+1:]...)
		metrics.CowsSold.Inc()
		metrics.MoneyEarned.WithLabelValues(MoneySourceCattle).Add(float64(money.Cents(proceeds)))
		logger.FromContext(ctx).Info("cow sold", "cow", cowID, "proceeds", money.String(proceeds))
		return nil
	}
	return fmt.Errorf("sell cow %s: %w", cowID, domain.ErrCowNotFound)
}

// MilkCow collects milk from a herd cow. The cow must be female and must
// have rested at least its milk rate since the last milking.
func (s *service) MilkCow(ctx context.Context, state *State, cowID string) (domain.Item, error) {
	c := state.FindCow(cowID)
	if c == nil {
		return domain.Item{}, fmt.Errorf("milk cow %s: %w", cowID, domain.ErrCowNotFound)
	}
	if float64(c.DaysSinceMilking) < cow.MilkRate(*c) {
		return domain.Item{}, fmt.Errorf("milk cow %s: %w", cowID, domain.ErrCowNotMilkable)
	}

	milk := s.cows.MilkItem(*c)
	c.DaysSinceMilking = 0
	utils.AddItemsToInventory(&state.Inventory, []domain.InventorySlot{{ItemID: milk.ID, Quantity: 1}}, nil)
	metrics.CowsMilked.WithLabelValues(milk.ID).Inc()
	logger.FromContext(ctx).Debug("cow milked", "cow", cowID, "item", milk.ID)
	return milk, nil
}

// HugCow raises a cow's happiness. Only the first MaxHappinessBoostsPerDay
// hugs per day have any effect; further hugs are harmless no-ops.
func (s *service) HugCow(ctx context.Context, state *State, cowID string) error {
	c := state.FindCow(cowID)
	if c == nil {
		return fmt.Errorf("hug cow %s: %w", cowID, domain.ErrCowNotFound)
	}
	if c.HappinessBoostsToday >= MaxHappinessBoostsPerDay {
		return nil
	}
	c.Happiness = utils.Clamp(c.Happiness+HugHappinessDelta, 0, 1)
	c.HappinessBoostsToday++
	return nil
}

// AffordablePurchase reports how many units of an item the balance covers,
// capped at desired, and the total cost.
func (s *service) AffordablePurchase(state *State, itemID string, desired int) (int, float64) {
	item := s.catalog.MustItem(itemID)
	unitPrice := s.market.ItemValue(item, state.ValueAdjustments)
	return market.AffordableQuantity(desired, unitPrice, state.Money)
}
