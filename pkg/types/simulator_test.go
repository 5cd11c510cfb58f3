package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialSimulatorCalculateProgress(t *testing.T) {
	tests := []struct {
		name    string
		sim     FinancialSimulator
		want    float64
		wantErr error
	}{
		{"travel recipe", FinancialSimulator{InitialSavings: 1000, TotalSavings: 6000}, 100.0 / 6, nil},
		{"complete", FinancialSimulator{InitialSavings: 500, TotalSavings: 500}, 100, nil},
		{"zero total", FinancialSimulator{InitialSavings: 500}, 0, ErrInvalidConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.sim.CalculateProgress()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFinancialSimulatorDetails(t *testing.T) {
	s := &FinancialSimulator{
		Goal:           "Travel to Europe",
		Duration:       12,
		MonthlySavings: 5000.0 / 12,
		Incentives:     []string{"Cashback on flights", "Reward points"},
		InitialSavings: 1000,
		TotalSavings:   6000,
	}
	got := s.Details()
	assert.Contains(t, got, "Goal: Travel to Europe")
	assert.Contains(t, got, "Monthly Savings: $416.67")
	assert.Contains(t, got, "Incentives: Cashback on flights, Reward points")
	assert.Contains(t, got, "Progress: 16.67% of your goal completed")

	s.TotalSavings = 0
	assert.NotContains(t, s.Details(), "Progress")
}
