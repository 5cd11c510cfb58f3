package builder

import (
	"github.com/mesh-intelligence/finplan/pkg/types"
)

// Recipe names accepted by Director.Recipe.
const (
	RecipeTravel = "travel"
	RecipeHome   = "home"
)

// Director runs fixed sequences of builder steps. It holds no state besides
// the builder, and resets it at the start of every recipe.
type Director struct {
	builder *SimulatorBuilder
}

// NewDirector returns a director driving b.
func NewDirector(b *SimulatorBuilder) *Director {
	return &Director{builder: b}
}

// Recipes lists the recipe names in display order.
func Recipes() []string {
	return []string{RecipeTravel, RecipeHome}
}

// Recipe builds the simulator for the named recipe.
// Returns a *types.UnknownVariantError for names outside Recipes.
func (d *Director) Recipe(name string) (*types.FinancialSimulator, error) {
	switch name {
	case RecipeTravel:
		return d.BuildTravelSimulator()
	case RecipeHome:
		return d.BuildHomeSimulator()
	default:
		return nil, &types.UnknownVariantError{Kind: "recipe", Value: name}
	}
}

// BuildTravelSimulator builds a one-year plan for a trip to Europe.
func (d *Director) BuildTravelSimulator() (*types.FinancialSimulator, error) {
	return d.builder.Reset().
		SetGoal("Travel to Europe").
		SetDuration(12).
		CalculateMonthlySavings(5000).
		SetInitialSavings(1000).
		SetTotalGoal(6000).
		AddIncentives([]string{"Cashback on flights", "Reward points"}).
		Build()
}

// BuildHomeSimulator builds a two-year plan for a home purchase.
func (d *Director) BuildHomeSimulator() (*types.FinancialSimulator, error) {
	return d.builder.Reset().
		SetGoal("Buy a Home").
		SetDuration(24).
		CalculateMonthlySavings(50000).
		SetInitialSavings(10000).
		SetTotalGoal(60000).
		AddIncentives([]string{"Discount on loans", "Free consultations"}).
		Build()
}
