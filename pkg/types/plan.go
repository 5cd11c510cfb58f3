// Financial plan templates.
// A FinancialPlan is the cloneable entity stored in the prototype registry.
package types

import (
	"fmt"
	"strings"
)

// FinancialPlan is a savings plan template. Callers customise clones freely;
// the registry keeps its own canonical copy.
type FinancialPlan struct {
	Goal           string   `json:"goal" yaml:"goal"`                       // What the plan saves for.
	Duration       int      `json:"duration" yaml:"duration"`               // Length in months.
	MonthlySavings float64  `json:"monthly_savings" yaml:"monthly_savings"` // Suggested monthly contribution.
	Incentives     []string `json:"incentives" yaml:"incentives"`           // Ordered list of perks.
	InitialSavings float64  `json:"initial_savings" yaml:"initial_savings"` // Amount saved up front.
}

// NewFinancialPlan returns a plan holding its own copy of incentives.
func NewFinancialPlan(goal string, duration int, monthlySavings float64, incentives []string, initialSavings float64) *FinancialPlan {
	return &FinancialPlan{
		Goal:           goal,
		Duration:       duration,
		MonthlySavings: monthlySavings,
		Incentives:     copyStrings(incentives),
		InitialSavings: initialSavings,
	}
}

// Clone returns a deep copy of the plan. The Incentives slice is never shared
// between the source and the clone. Cloning a nil plan returns nil.
func (p *FinancialPlan) Clone() *FinancialPlan {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Incentives = copyStrings(p.Incentives)
	return &clone
}

// Validate checks that the plan has a goal and a positive duration.
func (p *FinancialPlan) Validate() error {
	if strings.TrimSpace(p.Goal) == "" {
		return &InvalidConfigurationError{Field: "goal", Reason: "must not be empty"}
	}
	if p.Duration <= 0 {
		return &InvalidConfigurationError{Field: "duration", Reason: "must be positive"}
	}
	return nil
}

// Details renders every field of the plan for display.
func (p *FinancialPlan) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n", p.Goal)
	fmt.Fprintf(&b, "Duration: %d months\n", p.Duration)
	fmt.Fprintf(&b, "Monthly Savings: $%s\n", formatAmount(p.MonthlySavings))
	fmt.Fprintf(&b, "Incentives: %s\n", strings.Join(p.Incentives, ", "))
	fmt.Fprintf(&b, "Initial Savings: $%s\n", formatAmount(p.InitialSavings))
	return b.String()
}

// copyStrings returns a copy of s, preserving nil.
func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// formatAmount prints whole amounts without decimals and everything else with two.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
