package domain

import "fmt"

// Gender of a cow. Only female cows can be milked.
type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
)

// Genders lists all values in deterministic order for random selection.
var Genders = []Gender{GenderFemale, GenderMale}

// CowColor is the coat color rolled at generation time.
type CowColor string

const (
	CowColorBlue   CowColor = "BLUE"
	CowColorBrown  CowColor = "BROWN"
	CowColorGreen  CowColor = "GREEN"
	CowColorOrange CowColor = "ORANGE"
	CowColorPurple CowColor = "PURPLE"
	CowColorWhite  CowColor = "WHITE"
	CowColorYellow CowColor = "YELLOW"
)

// CowColors lists all values in deterministic order for random selection.
var CowColors = []CowColor{
	CowColorBlue,
	CowColorBrown,
	CowColorGreen,
	CowColorOrange,
	CowColorPurple,
	CowColorWhite,
	CowColorYellow,
}

// WeightMultiplier bounds. Care events move the multiplier inside this range.
const (
	CowWeightMultiplierMinimum = 0.5
	CowWeightMultiplierMaximum = 1.5
)

// Cow is a generated ranch animal. BaseWeight is fixed at generation;
// WeightMultiplier, Happiness and the day counters are mutated by care,
// milking and day-tick handlers.
type Cow struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Gender               Gender   `json:"gender"`
	Color                CowColor `json:"color"`
	BaseWeight           int      `json:"base_weight"`
	WeightMultiplier     float64  `json:"weight_multiplier"`
	DaysOld              int      `json:"days_old"`
	DaysSinceMilking     int      `json:"days_since_milking"`
	Happiness            float64  `json:"happiness"`
	HappinessBoostsToday int      `json:"happiness_boosts_today"`
}

// Validate enforces the cow invariants: happiness stays in [0, 1] and the
// weight multiplier stays inside its configured bounds. Violations are
// programming errors, not recoverable conditions.
func (c Cow) Validate() error {
	if c.Happiness < 0 || c.Happiness > 1 {
		return fmt.Errorf("%w: cow %s happiness %v outside [0, 1]", ErrInvariantViolation, c.ID, c.Happiness)
	}
	if c.WeightMultiplier < CowWeightMultiplierMinimum || c.WeightMultiplier > CowWeightMultiplierMaximum {
		return fmt.Errorf("%w: cow %s weight multiplier %v outside [%v, %v]",
			ErrInvariantViolation, c.ID, c.WeightMultiplier,
			CowWeightMultiplierMinimum, CowWeightMultiplierMaximum)
	}
	return nil
}
