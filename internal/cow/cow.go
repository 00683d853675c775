// Package cow implements cow generation and valuation: randomized attribute
// rolls at purchase time and the derived weight, milk and market-value
// queries the presentation layer consumes.
package cow

import (
	"math"

	"github.com/google/uuid"

	"github.com/aldenfarms/farmstead/internal/catalog"
	"github.com/aldenfarms/farmstead/internal/domain"
	"github.com/aldenfarms/farmstead/internal/money"
	"github.com/aldenfarms/farmstead/internal/utils"
)

// Options overrides generated attributes. A set field always wins over the
// generated default; pointer fields distinguish "unset" from a meaningful
// zero.
type Options struct {
	ID     string
	Name   string
	Gender domain.Gender
	Color  domain.CowColor

	BaseWeight           *int
	WeightMultiplier     *float64
	DaysOld              *int
	DaysSinceMilking     *int
	Happiness            *float64
	HappinessBoostsToday *int
}

// Generator rolls new cows and answers their derived-attribute queries.
type Generator struct {
	rng       utils.RNG
	milkTiers [3]domain.Item
}

// NewGenerator creates a generator using the given randomness source.
func NewGenerator(cat *catalog.Catalog, rng utils.RNG) *Generator {
	return &Generator{rng: rng, milkTiers: cat.MilkTiers()}
}

// Generate rolls a friendly cow. Gender and color are uniform choices, base
// weight is uniform in [base×genderMult − variance, base×genderMult +
// variance), and the ID is unique within a session. Any option present
// overrides the generated value.
func (g *Generator) Generate(options Options) domain.Cow {
	gender := options.Gender
	if gender == "" {
		gender = utils.Choose(g.rng, domain.Genders)
	}

	genderMultiplier := 1.0
	if gender == domain.GenderMale {
		genderMultiplier = MaleWeightMultiplier
	}
	baseWeight := int(math.Round(
		StartingWeightBase*genderMultiplier -
			StartingWeightVariance +
			g.rng.Float64()*(StartingWeightVariance*2),
	))

	cow := domain.Cow{
		ID:               uuid.NewString(),
		Name:             utils.Choose(g.rng, names),
		Gender:           gender,
		Color:            utils.Choose(g.rng, domain.CowColors),
		BaseWeight:       baseWeight,
		WeightMultiplier: 1,
		DaysOld:          1,
	}

	applyOptions(&cow, options)
	return cow
}

func applyOptions(cow *domain.Cow, options Options) {
	if options.ID != "" {
		cow.ID = options.ID
	}
	if options.Name != "" {
		cow.Name = options.Name
	}
	if options.Color != "" {
		cow.Color = options.Color
	}
	if options.BaseWeight != nil {
		cow.BaseWeight = *options.BaseWeight
	}
	if options.WeightMultiplier != nil {
		cow.WeightMultiplier = *options.WeightMultiplier
	}
	if options.DaysOld != nil {
		cow.DaysOld = *options.DaysOld
	}
	if options.DaysSinceMilking != nil {
		cow.DaysSinceMilking = *options.DaysSinceMilking
	}
	if options.Happiness != nil {
		cow.Happiness = *options.Happiness
	}
	if options.HappinessBoostsToday != nil {
		cow.HappinessBoostsToday = *options.HappinessBoostsToday
	}
}

// Weight is the cow's current weight: base weight scaled by the care-driven
// weight multiplier.
func Weight(cow domain.Cow) int {
	return int(math.Round(float64(cow.BaseWeight) * cow.WeightMultiplier))
}

// MilkItem picks the milk tier produced by the cow, stepped by happiness
// thirds. Boundaries are half-open on the low end: exactly 1/3 is mid tier.
func (g *Generator) MilkItem(cow domain.Cow) domain.Item {
	switch {
	case cow.Happiness < 1.0/3:
		return g.milkTiers[0]
	case cow.Happiness < 2.0/3:
		return g.milkTiers[1]
	default:
		return g.milkTiers[2]
	}
}

// MilkRate is the number of days between milkings. Female rates scale
// linearly from the weight multiplier: the heaviest cows milk fastest
// (lowest rate). Male cows return +Inf, signaling they cannot be milked.
func MilkRate(cow domain.Cow) float64 {
	switch cow.Gender {
	case domain.GenderFemale:
		return utils.Scale(
			cow.WeightMultiplier,
			domain.CowWeightMultiplierMinimum,
			domain.CowWeightMultiplierMaximum,
			MilkRateSlowest,
			MilkRateFastest,
		)
	case domain.GenderMale:
		return math.Inf(1)
	default:
		return math.Inf(1)
	}
}

// Value is the cow's market value in dollars: weight times an age
// multiplier that decays from the maximum at one day old to the minimum
// floor at MaximumAgeValueDropoff days, clamped flat beyond it.
func Value(cow domain.Cow) float64 {
	ageMultiplier := utils.Clamp(
		utils.Scale(
			float64(cow.DaysOld),
			1,
			MaximumAgeValueDropoff,
			MaximumValueMultiplier,
			MinimumValueMultiplier,
		),
		MinimumValueMultiplier,
		MaximumValueMultiplier,
	)
	return money.Cast(float64(Weight(cow)) * ageMultiplier)
}
