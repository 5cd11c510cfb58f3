package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/finplan/pkg/types"
)

func fullChain(b *SimulatorBuilder) *SimulatorBuilder {
	return b.SetGoal("Emergency fund").
		SetDuration(10).
		CalculateMonthlySavings(2000).
		SetInitialSavings(500).
		SetTotalGoal(2500).
		AddIncentives([]string{"Bonus interest"})
}

func TestSimulatorBuilderBuild(t *testing.T) {
	sim, err := fullChain(NewSimulatorBuilder()).Build()
	require.NoError(t, err)

	assert.Equal(t, &types.FinancialSimulator{
		Goal:           "Emergency fund",
		Duration:       10,
		MonthlySavings: 200,
		Incentives:     []string{"Bonus interest"},
		InitialSavings: 500,
		TotalSavings:   2500,
	}, sim)
}

func TestSimulatorBuilderDeterminism(t *testing.T) {
	a, err := fullChain(NewSimulatorBuilder()).Build()
	require.NoError(t, err)
	b, err := fullChain(NewSimulatorBuilder()).Build()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}

func TestSimulatorBuilderInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		chain     func(b *SimulatorBuilder) *SimulatorBuilder
		wantField string
	}{
		{
			name: "monthly savings before duration",
			chain: func(b *SimulatorBuilder) *SimulatorBuilder {
				return b.SetGoal("g").CalculateMonthlySavings(100).SetDuration(12).SetTotalGoal(100)
			},
			wantField: "duration",
		},
		{
			name: "zero duration",
			chain: func(b *SimulatorBuilder) *SimulatorBuilder {
				return b.SetGoal("g").SetDuration(0).CalculateMonthlySavings(100)
			},
			wantField: "duration",
		},
		{
			name: "zero total goal",
			chain: func(b *SimulatorBuilder) *SimulatorBuilder {
				return b.SetGoal("g").SetDuration(12).SetTotalGoal(0)
			},
			wantField: "total_savings",
		},
		{
			name: "missing goal",
			chain: func(b *SimulatorBuilder) *SimulatorBuilder {
				return b.SetDuration(12).SetTotalGoal(100)
			},
			wantField: "goal",
		},
		{
			name: "missing duration",
			chain: func(b *SimulatorBuilder) *SimulatorBuilder {
				return b.SetGoal("g").SetTotalGoal(100)
			},
			wantField: "duration",
		},
		{
			name: "missing total goal",
			chain: func(b *SimulatorBuilder) *SimulatorBuilder {
				return b.SetGoal("g").SetDuration(12)
			},
			wantField: "total_savings",
		},
		{
			name: "nothing set",
			chain: func(b *SimulatorBuilder) *SimulatorBuilder {
				return b
			},
			wantField: "goal",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := tt.chain(NewSimulatorBuilder()).Build()
			assert.Nil(t, sim)
			require.True(t, errors.Is(err, types.ErrInvalidConfiguration), "got %v", err)

			var ice *types.InvalidConfigurationError
			require.ErrorAs(t, err, &ice)
			assert.Equal(t, tt.wantField, ice.Field)
		})
	}
}

func TestSimulatorBuilderFirstErrorWins(t *testing.T) {
	b := NewSimulatorBuilder().SetGoal("g").SetDuration(-1).SetTotalGoal(0)

	var ice *types.InvalidConfigurationError
	require.ErrorAs(t, b.Err(), &ice)
	assert.Equal(t, "duration", ice.Field)
}

func TestSimulatorBuilderSingleUse(t *testing.T) {
	b := NewSimulatorBuilder()
	first, err := fullChain(b).Build()
	require.NoError(t, err)

	t.Run("second build fails", func(t *testing.T) {
		_, err := b.Build()
		assert.ErrorIs(t, err, types.ErrBuilderConsumed)
	})

	t.Run("steps after build fail", func(t *testing.T) {
		b.SetGoal("other")
		assert.ErrorIs(t, b.Err(), types.ErrBuilderConsumed)
		assert.Equal(t, "Emergency fund", first.Goal)
	})

	t.Run("reset allows reuse", func(t *testing.T) {
		second, err := fullChain(b.Reset()).SetGoal("Second fund").Build()
		require.NoError(t, err)
		assert.Equal(t, "Second fund", second.Goal)
		assert.Equal(t, "Emergency fund", first.Goal)
	})
}

func TestSimulatorBuilderCopiesIncentives(t *testing.T) {
	incentives := []string{"a", "b"}
	sim, err := NewSimulatorBuilder().
		SetGoal("g").
		SetDuration(1).
		SetTotalGoal(1).
		AddIncentives(incentives).
		Build()
	require.NoError(t, err)

	incentives[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, sim.Incentives)
}
