// Package builder assembles FinancialSimulator values step by step.
//
// A SimulatorBuilder is mutated in place and every step returns the same
// builder so calls can be chained. The first failing step is recorded and
// later steps are skipped; Build reports it. A builder yields one simulator:
// after Build, every step and a second Build fail with
// types.ErrBuilderConsumed until Reset is called. Builders are not safe for
// concurrent use.
package builder

import (
	"github.com/mesh-intelligence/finplan/pkg/types"
)

// Fields that must be set before Build.
const (
	fieldGoal     = "goal"
	fieldDuration = "duration"
	fieldTotal    = "total_savings"
)

// SimulatorBuilder accumulates a FinancialSimulator.
type SimulatorBuilder struct {
	sim   types.FinancialSimulator
	set   map[string]bool
	err   error
	built bool
}

// NewSimulatorBuilder returns an empty builder.
func NewSimulatorBuilder() *SimulatorBuilder {
	b := &SimulatorBuilder{}
	b.Reset()
	return b
}

// Reset discards all accumulated state, including a recorded error, and makes
// the builder usable again after Build.
func (b *SimulatorBuilder) Reset() *SimulatorBuilder {
	b.sim = types.FinancialSimulator{}
	b.set = make(map[string]bool)
	b.err = nil
	b.built = false
	return b
}

// step runs fn unless the builder already failed or was consumed.
func (b *SimulatorBuilder) step(fn func() error) *SimulatorBuilder {
	if b.built {
		b.err = types.ErrBuilderConsumed
		return b
	}
	if b.err != nil {
		return b
	}
	b.err = fn()
	return b
}

// SetGoal sets the goal description.
func (b *SimulatorBuilder) SetGoal(goal string) *SimulatorBuilder {
	return b.step(func() error {
		b.sim.Goal = goal
		b.set[fieldGoal] = goal != ""
		return nil
	})
}

// SetDuration sets the duration in months. Non-positive values fail.
func (b *SimulatorBuilder) SetDuration(months int) *SimulatorBuilder {
	return b.step(func() error {
		if months <= 0 {
			return &types.InvalidConfigurationError{Field: fieldDuration, Reason: "must be positive"}
		}
		b.sim.Duration = months
		b.set[fieldDuration] = true
		return nil
	})
}

// CalculateMonthlySavings spreads amount evenly over the duration. The
// duration must already be set.
func (b *SimulatorBuilder) CalculateMonthlySavings(amount float64) *SimulatorBuilder {
	return b.step(func() error {
		if !b.set[fieldDuration] || b.sim.Duration == 0 {
			return &types.InvalidConfigurationError{Field: fieldDuration, Reason: "must be set before calculating monthly savings"}
		}
		b.sim.MonthlySavings = amount / float64(b.sim.Duration)
		return nil
	})
}

// AddIncentives replaces the incentive list with a copy of incentives.
func (b *SimulatorBuilder) AddIncentives(incentives []string) *SimulatorBuilder {
	return b.step(func() error {
		b.sim.Incentives = append([]string(nil), incentives...)
		return nil
	})
}

// SetInitialSavings sets the amount already saved.
func (b *SimulatorBuilder) SetInitialSavings(amount float64) *SimulatorBuilder {
	return b.step(func() error {
		b.sim.InitialSavings = amount
		return nil
	})
}

// SetTotalGoal sets the target amount. Zero fails because progress is
// measured against it.
func (b *SimulatorBuilder) SetTotalGoal(amount float64) *SimulatorBuilder {
	return b.step(func() error {
		if amount == 0 {
			return &types.InvalidConfigurationError{Field: fieldTotal, Reason: "must not be zero"}
		}
		b.sim.TotalSavings = amount
		b.set[fieldTotal] = true
		return nil
	})
}

// Err returns the first error recorded by a step, if any.
func (b *SimulatorBuilder) Err() error {
	return b.err
}

// Build returns the assembled simulator. It fails with the recorded step
// error, with an InvalidConfigurationError naming the first required field
// left unset, or with types.ErrBuilderConsumed when called twice.
func (b *SimulatorBuilder) Build() (*types.FinancialSimulator, error) {
	if b.built {
		return nil, types.ErrBuilderConsumed
	}
	if b.err != nil {
		return nil, b.err
	}
	for _, field := range []string{fieldGoal, fieldDuration, fieldTotal} {
		if !b.set[field] {
			return nil, &types.InvalidConfigurationError{Field: field, Reason: "is required"}
		}
	}

	b.built = true
	sim := b.sim
	sim.Incentives = append([]string(nil), b.sim.Incentives...)
	return &sim, nil
}
