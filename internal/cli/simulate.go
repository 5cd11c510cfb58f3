package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/finplan/internal/builder"
	"github.com/mesh-intelligence/finplan/pkg/types"
)

const recipeCustom = "custom"

// customSimulation holds the flags of simulate custom.
type customSimulation struct {
	goal       string
	duration   int
	amount     float64
	initial    float64
	total      float64
	incentives []string
}

// build drives the builder with only the steps whose flags were set, so an
// omitted required flag surfaces as an invalid configuration.
func (c customSimulation) build(cmd *cobra.Command, b *builder.SimulatorBuilder) (*types.FinancialSimulator, error) {
	flags := cmd.Flags()
	if flags.Changed("goal") {
		b.SetGoal(c.goal)
	}
	if flags.Changed("duration") {
		b.SetDuration(c.duration)
	}
	if flags.Changed("amount") {
		b.CalculateMonthlySavings(c.amount)
	}
	if flags.Changed("initial") {
		b.SetInitialSavings(c.initial)
	}
	if flags.Changed("total") {
		b.SetTotalGoal(c.total)
	}
	if flags.Changed("incentive") {
		b.AddIncentives(c.incentives)
	}
	return b.Build()
}

// simulationOutput is the JSON shape of a simulation.
type simulationOutput struct {
	*types.FinancialSimulator
	Progress float64 `json:"progress"`
}

func newSimulateCmd(a *app) *cobra.Command {
	var c customSimulation
	cmd := &cobra.Command{
		Use:   "simulate <" + strings.Join(append(builder.Recipes(), recipeCustom), "|") + ">",
		Short: "Build a savings-goal simulator",
		Long: `Simulate builds a savings-goal simulator from a predefined recipe, or
from flags when the recipe is "custom".

Example:
  finplan simulate travel
  finplan simulate custom --goal "Emergency fund" --duration 10 --amount 2000 --initial 500 --total 2500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder.NewSimulatorBuilder()

			var (
				sim *types.FinancialSimulator
				err error
			)
			if args[0] == recipeCustom {
				sim, err = c.build(cmd, b)
			} else {
				sim, err = builder.NewDirector(b).Recipe(args[0])
			}
			if err != nil {
				return a.fail(cmd, "build simulator", err)
			}
			progress, err := sim.CalculateProgress()
			if err != nil {
				return a.fail(cmd, "calculate progress", err)
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), simulationOutput{FinancialSimulator: sim, Progress: progress})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sim.Details())
			return err
		},
	}
	cmd.Flags().StringVar(&c.goal, "goal", "", "goal description (custom)")
	cmd.Flags().IntVar(&c.duration, "duration", 0, "duration in months (custom)")
	cmd.Flags().Float64Var(&c.amount, "amount", 0, "amount to spread over the duration (custom)")
	cmd.Flags().Float64Var(&c.initial, "initial", 0, "initial savings (custom)")
	cmd.Flags().Float64Var(&c.total, "total", 0, "target amount (custom)")
	cmd.Flags().StringArrayVar(&c.incentives, "incentive", nil, "incentive (custom, repeatable)")
	return cmd
}
