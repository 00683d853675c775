package domain

// Recipe is a craftable catalog entry. Recipes are items themselves (the
// crafted dish is sellable) plus the ingredient quantities required to make
// one unit.
type Recipe struct {
	Item
	Ingredients map[string]int `json:"ingredients" validate:"required,min=1"`
}
