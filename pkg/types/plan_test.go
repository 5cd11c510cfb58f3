package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFinancialPlanClone(t *testing.T) {
	t.Run("clone equals source", func(t *testing.T) {
		p := NewFinancialPlan("Save for a car", 24, 300, []string{"Cashback, Rewards Points"}, 100)
		c := p.Clone()
		assert.Equal(t, p, c)
		assert.NotSame(t, p, c)
	})

	t.Run("nil plan clones to nil", func(t *testing.T) {
		var p *FinancialPlan
		assert.Nil(t, p.Clone())
	})

	t.Run("nil incentives stay nil", func(t *testing.T) {
		p := &FinancialPlan{Goal: "g", Duration: 1}
		assert.Nil(t, p.Clone().Incentives)
	})

	t.Run("constructor copies incentives", func(t *testing.T) {
		in := []string{"a", "b"}
		p := NewFinancialPlan("g", 1, 0, in, 0)
		in[0] = "changed"
		assert.Equal(t, []string{"a", "b"}, p.Incentives)
	})
}

func TestFinancialPlanValidate(t *testing.T) {
	tests := []struct {
		name      string
		plan      FinancialPlan
		wantField string
	}{
		{"valid", FinancialPlan{Goal: "Save", Duration: 12}, ""},
		{"blank goal", FinancialPlan{Goal: "  ", Duration: 12}, "goal"},
		{"zero duration", FinancialPlan{Goal: "Save", Duration: 0}, "duration"},
		{"negative duration", FinancialPlan{Goal: "Save", Duration: -3}, "duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrInvalidConfiguration))
			var ice *InvalidConfigurationError
			require.ErrorAs(t, err, &ice)
			assert.Equal(t, tt.wantField, ice.Field)
		})
	}
}

func TestFinancialPlanDetails(t *testing.T) {
	p := NewFinancialPlan("Invest in stocks", 36, 500, []string{"Dividend reinvestment", "Reduced fees"}, 200)
	got := p.Details()

	for _, want := range []string{
		"Goal: Invest in stocks",
		"Duration: 36 months",
		"Monthly Savings: $500",
		"Incentives: Dividend reinvestment, Reduced fees",
		"Initial Savings: $200",
	} {
		assert.True(t, strings.Contains(got, want), "details missing %q:\n%s", want, got)
	}
}

func TestProperty_CloneIsolation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := NewFinancialPlan(
			rapid.String().Draw(rt, "goal"),
			rapid.IntRange(0, 600).Draw(rt, "duration"),
			rapid.Float64Range(0, 1e6).Draw(rt, "monthly"),
			rapid.SliceOfN(rapid.String(), 1, 6).Draw(rt, "incentives"),
			rapid.Float64Range(0, 1e6).Draw(rt, "initial"),
		)
		before := append([]string(nil), src.Incentives...)

		clone := src.Clone()
		require.Equal(rt, src, clone)

		// Clone mutations stay out of the source.
		idx := rapid.IntRange(0, len(clone.Incentives)-1).Draw(rt, "idx")
		clone.Incentives[idx] = clone.Incentives[idx] + "-clone"
		clone.Incentives = append(clone.Incentives, "extra")
		require.Equal(rt, before, src.Incentives)

		// Source mutations stay out of the clone.
		clone2 := src.Clone()
		src.Incentives[0] = src.Incentives[0] + "-src"
		require.Equal(rt, before[0], clone2.Incentives[0])
	})
}
