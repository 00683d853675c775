package sim

import (
	"github.com/aldenfarms/farmstead/internal/domain"
	"github.com/aldenfarms/farmstead/internal/field"
)

// State is the full mutable game state for one session. All mutation goes
// through Service methods; State itself carries no behavior beyond storage.
type State struct {
	DayCount         int
	Money            float64
	Field            *field.Field
	Inventory        domain.Inventory
	Cows             []domain.Cow
	CowForSale       *domain.Cow
	ValueAdjustments domain.ValueAdjustments
	PriceCrashes     domain.PriceEvents
	PriceSurges      domain.PriceEvents
}

// NewState returns a fresh session: an empty field of the given dimensions,
// an empty inventory and no active price events.
func NewState(rows, cols int, startingMoney float64) *State {
	return &State{
		Money:            startingMoney,
		Field:            field.New(rows, cols),
		ValueAdjustments: domain.ValueAdjustments{},
		PriceCrashes:     domain.PriceEvents{},
		PriceSurges:      domain.PriceEvents{},
	}
}

// FindCow returns a pointer into Cows for in-place mutation, or nil.
func (s *State) FindCow(cowID string) *domain.Cow {
	for i := range s.Cows {
		if s.Cows[i].ID == cowID {
			return &s.Cows[i]
		}
	}
	return nil
}
