package prototype

import "github.com/mesh-intelligence/finplan/pkg/types"

// Names of the built-in plan templates.
const (
	SavingsPlan    = "Savings Plan"
	InvestmentPlan = "Investment Plan"
)

// PlanRegistry is a registry of financial plan templates.
type PlanRegistry = Registry[*types.FinancialPlan]

// NewPlanRegistry creates an empty plan registry.
func NewPlanRegistry() *PlanRegistry {
	return NewRegistry[*types.FinancialPlan]()
}

// DefaultPlans returns the built-in templates keyed by name.
func DefaultPlans() map[string]*types.FinancialPlan {
	return map[string]*types.FinancialPlan{
		SavingsPlan: types.NewFinancialPlan(
			"Save for a car", 24, 300,
			[]string{"Cashback, Rewards Points"}, 100,
		),
		InvestmentPlan: types.NewFinancialPlan(
			"Invest in stocks", 36, 500,
			[]string{"Dividend reinvestment", "Reduced fees"}, 200,
		),
	}
}

// SeedDefaults registers the built-in templates, replacing entries with the
// same names.
func SeedDefaults(r *PlanRegistry) {
	for name, plan := range DefaultPlans() {
		r.Register(name, plan)
	}
}
