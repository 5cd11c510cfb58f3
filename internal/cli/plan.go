package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/finplan/pkg/types"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "List and customise plan templates",
	}
	cmd.AddCommand(newPlanListCmd(a))
	cmd.AddCommand(newPlanShowCmd(a))
	return cmd
}

// namedPlan is the JSON shape of a listed plan.
type namedPlan struct {
	Name string               `json:"name"`
	Plan *types.FinancialPlan `json:"plan"`
}

func newPlanListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered plan templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var listed []namedPlan
			for _, name := range a.plans.Names() {
				plan, err := a.plans.Create(name)
				if err != nil {
					return a.fail(cmd, "list plans", err)
				}
				listed = append(listed, namedPlan{Name: name, Plan: plan})
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), listed)
			}

			f, err := a.themeFactory()
			if err != nil {
				return a.fail(cmd, "resolve theme", err)
			}
			rows := make([][]string, 0, len(listed))
			for _, np := range listed {
				rows = append(rows, []string{
					np.Name,
					np.Plan.Goal,
					strconv.Itoa(np.Plan.Duration),
					strconv.FormatFloat(np.Plan.MonthlySavings, 'f', 2, 64),
					strings.Join(np.Plan.Incentives, ", "),
				})
			}
			out := f.CreateTable().RenderRows([]string{"Plan", "Goal", "Months", "Monthly", "Incentives"}, rows)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

// planOverrides holds the customisation flags of plan show.
type planOverrides struct {
	goal           string
	duration       int
	monthlySavings float64
	initialSavings float64
	incentives     []string
}

// apply writes every flag the user set onto plan.
func (o planOverrides) apply(cmd *cobra.Command, plan *types.FinancialPlan) {
	flags := cmd.Flags()
	if flags.Changed("goal") {
		plan.Goal = o.goal
	}
	if flags.Changed("duration") {
		plan.Duration = o.duration
	}
	if flags.Changed("monthly-savings") {
		plan.MonthlySavings = o.monthlySavings
	}
	if flags.Changed("initial-savings") {
		plan.InitialSavings = o.initialSavings
	}
	if flags.Changed("incentive") {
		plan.Incentives = append([]string(nil), o.incentives...)
	}
}

func newPlanShowCmd(a *app) *cobra.Command {
	var o planOverrides
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Clone a plan template and apply customisations",
		Long: `Show clones the named plan template, applies any override flags to the
clone, and prints the result. The template itself is never modified.

Example:
  finplan plan show "Savings Plan"
  finplan plan show "Savings Plan" --goal "Save for a trip to Europe" --duration 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.plans.Create(args[0])
			if err != nil {
				return a.fail(cmd, "create plan", err)
			}
			a.log.DebugContextf(cmd.Context(), "cloned plan %q", args[0])
			o.apply(cmd, plan)

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), namedPlan{Name: args[0], Plan: plan})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), plan.Details())
			return err
		},
	}
	cmd.Flags().StringVar(&o.goal, "goal", "", "override the goal")
	cmd.Flags().IntVar(&o.duration, "duration", 0, "override the duration in months")
	cmd.Flags().Float64Var(&o.monthlySavings, "monthly-savings", 0, "override the monthly savings")
	cmd.Flags().Float64Var(&o.initialSavings, "initial-savings", 0, "override the initial savings")
	cmd.Flags().StringArrayVar(&o.incentives, "incentive", nil, "replace incentives (repeatable)")
	return cmd
}
