// Financial goal simulators assembled by the builder package.
package types

import (
	"fmt"
	"strings"
)

// FinancialSimulator is a savings-goal projection. Instances are produced by
// builder.SimulatorBuilder and are not modified after Build returns them.
type FinancialSimulator struct {
	Goal           string   `json:"goal"`
	Duration       int      `json:"duration"` // Months.
	MonthlySavings float64  `json:"monthly_savings"`
	Incentives     []string `json:"incentives"`
	InitialSavings float64  `json:"initial_savings"`
	TotalSavings   float64  `json:"total_savings"` // Target amount.
}

// CalculateProgress returns the share of the target already saved, as a
// percentage. Returns an InvalidConfigurationError when the target is zero.
func (s *FinancialSimulator) CalculateProgress() (float64, error) {
	if s.TotalSavings == 0 {
		return 0, &InvalidConfigurationError{Field: "total_savings", Reason: "must not be zero"}
	}
	return s.InitialSavings / s.TotalSavings * 100, nil
}

// Details renders every field plus the progress line.
func (s *FinancialSimulator) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n", s.Goal)
	fmt.Fprintf(&b, "Duration: %d months\n", s.Duration)
	fmt.Fprintf(&b, "Monthly Savings: $%.2f\n", s.MonthlySavings)
	fmt.Fprintf(&b, "Initial Savings: $%s\n", formatAmount(s.InitialSavings))
	fmt.Fprintf(&b, "Total Savings: $%s\n", formatAmount(s.TotalSavings))
	fmt.Fprintf(&b, "Incentives: %s\n", strings.Join(s.Incentives, ", "))
	if progress, err := s.CalculateProgress(); err == nil {
		fmt.Fprintf(&b, "Progress: %.2f%% of your goal completed\n", progress)
	}
	return b.String()
}
