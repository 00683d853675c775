// Command farmstead runs a scripted farm session: it buys and plants seeds,
// waters and harvests crops, tends a small herd and sells the produce,
// logging each day and dumping the collected metrics at the end.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/config"
	"github.com/aldenfarms/farmstead/internal/cow"
	"github.com/aldenfarms/farmstead/internal/crafting"
	"github.com/aldenfarms/farmstead/internal/crop"
	"github.com/aldenfarms/farmstead/internal/domain"
	"github.com/aldenfarms/farmstead/internal/logger"
	"github.com/aldenfarms/farmstead/internal/market"
	"github.com/aldenfarms/farmstead/internal/money"
	"github.com/aldenfarms/farmstead/internal/sim"
	"github.com/aldenfarms/farmstead/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	ctx := logger.WithSessionID(context.Background(), logger.GenerateSessionID())
	logApp := logger.FromContext(ctx)

	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("Failed to build item catalog: %v", err)
	}

	rng := utils.NewRNG()
	if cfg.RNGSeed != 0 {
		rng = utils.NewSeededRNG(cfg.RNGSeed)
		logApp.Info("using deterministic seed", "seed", cfg.RNGSeed)
	}

	cropModel := crop.NewModel(cat)
	svc := sim.NewService(
		cat,
		cropModel,
		cow.NewGenerator(cat, rng),
		market.NewEngine(cat, cropModel, rng),
		crafting.NewChecker(cat),
		rng,
	)

	state := sim.NewState(cfg.FieldRows, cfg.FieldCols, cfg.StartingMoney)
	logApp.Info("session starting",
		"days", cfg.SimDays,
		"field", cfg.FieldRows*cfg.FieldCols,
		"money", money.String(state.Money))

	for day := 0; day < cfg.SimDays; day++ {
		runDay(ctx, svc, state, cat)
	}

	logApp.Info("session finished",
		"days", state.DayCount,
		"money", money.String(state.Money),
		"netWorth", money.String(svc.NetWorth(state)),
		"cows", len(state.Cows))

	dumpMetrics(ctx)
}

// runDay plays one day of a simple policy: harvest and sell what is ready,
// restock and plant seeds, tend the herd, water everything, then let the
// day tick.
func runDay(ctx context.Context, svc sim.Service, state *sim.State, cat *catalog.Catalog) {
	harvestGrown(ctx, svc, state)
	sellProduce(ctx, svc, state, cat)
	plantSeeds(ctx, svc, state)
	tendHerd(ctx, svc, state)
	svc.WaterAllPlots(ctx, state)
	svc.ProcessDay(ctx, state)
}

func harvestGrown(ctx context.Context, svc sim.Service, state *sim.State) {
	for y := 0; y < state.Field.Rows(); y++ {
		for x := 0; x < state.Field.Cols(); x++ {
			_, err := svc.HarvestPlot(ctx, state, x, y)
			if err != nil && !errors.Is(err, domain.ErrPlotEmpty) && !errors.Is(err, domain.ErrCropNotGrown) {
				logger.FromContext(ctx).Warn("harvest failed", "x", x, "y", y, "error", err)
			}
		}
	}
}

// sellProduce liquidates every farm product (grown crops and milk) at the
// day's prices.
func sellProduce(ctx context.Context, svc sim.Service, state *sim.State, cat *catalog.Catalog) {
	slots := make([]domain.InventorySlot, len(state.Inventory.Slots))
	copy(slots, state.Inventory.Slots)

	for _, slot := range slots {
		item := cat.MustItem(slot.ItemID)
		if !item.IsFarmProduct() {
			continue
		}
		if err := svc.SellItem(ctx, state, slot.ItemID, slot.Quantity); err != nil {
			logger.FromContext(ctx).Warn("sale failed", "item", slot.ItemID, "error", err)
		}
	}
}

// plantSeeds buys as many carrot seeds as empty plots and money allow, then
// plants the whole stock.
func plantSeeds(ctx context.Context, svc sim.Service, state *sim.State) {
	emptyPlots := 0
	state.Field.ForEach(func(x, y int, plot *domain.PlotContent) {
		if plot == nil {
			emptyPlots++
		}
	})
	if emptyPlots == 0 {
		return
	}

	quantity, _ := svc.AffordablePurchase(state, catalog.ItemCarrotSeed, emptyPlots)
	if quantity > 0 {
		if err := svc.BuyItem(ctx, state, catalog.ItemCarrotSeed, quantity); err != nil {
			logger.FromContext(ctx).Warn("seed purchase failed", "error", err)
			return
		}
	}

	for y := 0; y < state.Field.Rows() && quantity > 0; y++ {
		for x := 0; x < state.Field.Cols() && quantity > 0; x++ {
			if state.Field.At(x, y) != nil {
				continue
			}
			if err := svc.PlantSeed(ctx, state, x, y, catalog.ItemCarrotSeed); err != nil {
				logger.FromContext(ctx).Warn("planting failed", "x", x, "y", y, "error", err)
				return
			}
			quantity--
		}
	}
}

// tendHerd keeps one cow around, hugs everybody and milks whoever is ready.
func tendHerd(ctx context.Context, svc sim.Service, state *sim.State) {
	if len(state.Cows) == 0 && state.CowForSale != nil {
		if err := svc.BuyCow(ctx, state); err != nil && !errors.Is(err, domain.ErrInsufficientFunds) {
			logger.FromContext(ctx).Warn("cow purchase failed", "error", err)
		}
	}

	for _, c := range state.Cows {
		if err := svc.HugCow(ctx, state, c.ID); err != nil {
			logger.FromContext(ctx).Warn("hug failed", "cow", c.ID, "error", err)
		}
		if _, err := svc.MilkCow(ctx, state, c.ID); err != nil && !errors.Is(err, domain.ErrCowNotMilkable) {
			logger.FromContext(ctx).Warn("milking failed", "cow", c.ID, "error", err)
		}
	}
}

// dumpMetrics logs every counter gathered from the default registry.
func dumpMetrics(ctx context.Context) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		logger.FromContext(ctx).Error("metrics gather failed", "error", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			counter := metric.GetCounter()
			if counter == nil || counter.GetValue() == 0 {
				continue
			}
			args := []any{"metric", family.GetName(), "value", counter.GetValue()}
			for _, label := range metric.GetLabel() {
				args = append(args, label.GetName(), label.GetValue())
			}
			logger.FromContext(ctx).Info("session metric", args...)
		}
	}
}
