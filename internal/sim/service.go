// Package sim drives a farm session: the day tick and every player action
// that mutates session state.
package sim

import (
	"context"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/cow"
	"github.com/aldenfarms/farmstead/internal/crafting"
	"github.com/aldenfarms/farmstead/internal/crop"
	"github.com/aldenfarms/farmstead/internal/domain"
	"github.com/aldenfarms/farmstead/internal/field"
	"github.com/aldenfarms/farmstead/internal/logger"
	"github.com/aldenfarms/farmstead/internal/market"
	"github.com/aldenfarms/farmstead/internal/metrics"
	"github.com/aldenfarms/farmstead/internal/money"
	"github.com/aldenfarms/farmstead/internal/utils"
)

// Service defines the session business logic.
type Service interface {
	// ProcessDay advances the session by one day: ages crops and cows,
	// progresses price events and regenerates value adjustments.
	ProcessDay(ctx context.Context, state *State)

	// Field actions.
	PlantSeed(ctx context.Context, state *State, x, y int, seedID string) error
	PlaceSprinkler(ctx context.Context, state *State, x, y int) error
	WaterPlot(ctx context.Context, state *State, x, y int) error
	WaterAllPlots(ctx context.Context, state *State)
	FertilizePlot(ctx context.Context, state *State, x, y int) error
	HarvestPlot(ctx context.Context, state *State, x, y int) (domain.Item, error)
	ClearPlot(ctx context.Context, state *State, x, y int) error

	// Commerce actions.
	BuyItem(ctx context.Context, state *State, itemID string, quantity int) error
	SellItem(ctx context.Context, state *State, itemID string, quantity int) error

	// Cow actions.
	BuyCow(ctx context.Context, state *State) error
	SellCow(ctx context.Context, state *State, cowID string) error
	MilkCow(ctx context.Context, state *State, cowID string) (domain.Item, error)
	HugCow(ctx context.Context, state *State, cowID string) error

	// Queries.
	GrownPlots(state *State) []*domain.PlotContent
	CanMakeRecipe(recipe domain.Recipe, state *State) bool
	AffordablePurchase(state *State, itemID string, desired int) (int, float64)
	NetWorth(state *State) float64
}

type service struct {
	catalog  *catalog.Catalog
	crops    *crop.Model
	cows     *cow.Generator
	market   *market.Engine
	crafting *crafting.Checker
	rng      utils.RNG

	queries    *field.Queries
	cropToken  field.PredicateToken
	grownToken field.PredicateToken
}

// NewService creates a new session service.
func NewService(
	cat *catalog.Catalog,
	cropModel *crop.Model,
	generator *cow.Generator,
	engine *market.Engine,
	checker *crafting.Checker,
	rng utils.RNG,
) Service {
	queries := field.NewQueries()
	s := &service{
		catalog:  cat,
		crops:    cropModel,
		cows:     generator,
		market:   engine,
		crafting: checker,
		rng:      rng,
		queries:  queries,
	}
	s.cropToken = queries.RegisterPredicate(cropModel.ContainsCrop)
	s.grownToken = queries.RegisterPredicate(func(plot *domain.PlotContent) bool {
		return cropModel.ContainsCrop(plot) && cropModel.LifeStage(plot) == domain.LifeStageGrown
	})
	return s
}

// ProcessDay advances the session by one day.
func (s *service) ProcessDay(ctx context.Context, state *State) {
	log := logger.FromContext(ctx)

	state.DayCount++
	metrics.DaysSimulated.Inc()

	s.ageCows(state)
	s.runSprinklers(state)
	s.ageCrops(state)
	s.progressPriceEvents(ctx, state)

	state.ValueAdjustments = s.market.GenerateValueAdjustments(state.PriceCrashes, state.PriceSurges)

	offer := s.cows.Generate(cow.Options{})
	state.CowForSale = &offer
	metrics.CowsGenerated.Inc()

	log.Info("day processed",
		"day", state.DayCount,
		"money", money.String(state.Money),
		"cows", len(state.Cows),
		"plantedPlots", len(s.queries.Crops(state.Field, s.cropToken)),
		"grownPlots", len(s.GrownPlots(state)))
}

func (s *service) ageCows(state *State) {
	for i := range state.Cows {
		state.Cows[i].DaysOld++
		state.Cows[i].DaysSinceMilking++
		state.Cows[i].HappinessBoostsToday = 0
	}
}

// runSprinklers waters every crop inside each placed sprinkler's range.
// Runs before ageCrops so sprinkler water counts toward today's growth.
func (s *service) runSprinklers(state *State) {
	state.Field.ForEach(func(x, y int, plot *domain.PlotContent) {
		if plot == nil || plot.ItemID != catalog.ItemSprinkler {
			return
		}
		for _, row := range field.RangeCoords(SprinklerRangeSize, x, y) {
			for _, coord := range row {
				if target := state.Field.At(coord.X, coord.Y); s.crops.ContainsCrop(target) {
					target.WasWateredToday = true
				}
			}
		}
	})
}

// ageCrops credits a watered day (plus the fertilizer bonus) to every crop
// that was watered, then resets the watered flag. Unwatered crops still age.
func (s *service) ageCrops(state *State) {
	state.Field.ForEach(func(x, y int, plot *domain.PlotContent) {
		if !s.crops.ContainsCrop(plot) {
			return
		}
		plot.DaysOld++
		if plot.WasWateredToday {
			credit := 1.0
			if plot.IsFertilized {
				credit += FertilizerGrowthBonus
			}
			plot.DaysWatered += credit
			plot.WasWateredToday = false
		}
	})
}

// progressPriceEvents decrements active event timers, drops expired events
// and rolls the daily chance of a new crash or surge on a random crop.
func (s *service) progressPriceEvents(ctx context.Context, state *State) {
	log := logger.FromContext(ctx)

	decrement := func(events domain.PriceEvents) {
		for itemID, event := range events {
			event.DaysRemaining--
			if event.DaysRemaining <= 0 {
				delete(events, itemID)
				continue
			}
			events[itemID] = event
		}
	}
	decrement(state.PriceCrashes)
	decrement(state.PriceSurges)

	if s.rng.Float64() >= PriceEventChance {
		return
	}

	cropItem := s.market.RandomCropItem()
	if _, crashing := state.PriceCrashes[cropItem.ID]; crashing {
		return
	}
	if _, surging := state.PriceSurges[cropItem.ID]; surging {
		return
	}

	event := s.market.PriceEventForCrop(cropItem)
	eventType := metrics.EventTypeCrash
	if s.rng.Float64() < 0.5 {
		state.PriceCrashes[cropItem.ID] = event
	} else {
		state.PriceSurges[cropItem.ID] = event
		eventType = metrics.EventTypeSurge
	}
	metrics.PriceEventsTriggered.WithLabelValues(eventType, cropItem.ID).Inc()
	log.Info("price event triggered", "type", eventType, "item", cropItem.ID, "daysRemaining", event.DaysRemaining)
}

// GrownPlots returns every plot holding a harvest-ready crop.
func (s *service) GrownPlots(state *State) []*domain.PlotContent {
	return s.queries.Crops(state.Field, s.grownToken)
}

// CanMakeRecipe reports whether the session inventory can cover the recipe.
func (s *service) CanMakeRecipe(recipe domain.Recipe, state *State) bool {
	return s.crafting.CanMakeRecipe(recipe, state.Inventory)
}

// NetWorth is cash on hand plus the adjusted value of the inventory and the
// sale value of the herd.
func (s *service) NetWorth(state *State) float64 {
	total := money.Cents(state.Money)
	for _, slot := range state.Inventory.Slots {
		item := s.catalog.MustItem(slot.ItemID)
		total += money.Cents(s.market.ItemValue(item, state.ValueAdjustments)) * int64(slot.Quantity)
	}
	for _, c := range state.Cows {
		total += money.Cents(cow.Value(c))
	}
	return money.FromCents(total)
}

// creditMoney and debitMoney route every balance change through cents.
func creditMoney(state *State, amount float64) {
	state.Money = money.FromCents(money.Cents(state.Money) + money.Cents(amount))
}

func debitMoney(state *State, amount float64) {
	state.Money = money.FromCents(money.Cents(state.Money) - money.Cents(amount))
}
