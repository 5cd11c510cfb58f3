package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/finplan/internal/builder"
	"github.com/mesh-intelligence/finplan/internal/factory"
	"github.com/mesh-intelligence/finplan/internal/prototype"
	"github.com/mesh-intelligence/finplan/internal/theme"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every pattern with its sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			steps := []struct {
				name string
				run  func(io.Writer) error
			}{
				{"builder", demoBuilder},
				{"factory method", demoFactoryMethod},
				{"abstract factory", demoAbstractFactory},
				{"prototype", demoPrototype},
			}
			for _, s := range steps {
				a.log.DebugContext(cmd.Context(), "demo step", "pattern", s.name)
				if err := s.run(w); err != nil {
					return a.fail(cmd, "demo "+s.name, err)
				}
			}
			return nil
		},
	}
}

func demoBuilder(w io.Writer) error {
	fmt.Fprintln(w, "== Builder ==")
	d := builder.NewDirector(builder.NewSimulatorBuilder())
	for _, recipe := range builder.Recipes() {
		sim, err := d.Recipe(recipe)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s", sim.Details())
	}
	fmt.Fprintln(w)
	return nil
}

func demoFactoryMethod(w io.Writer) error {
	fmt.Fprintln(w, "== Factory Method ==")
	for _, kind := range factory.AccountKinds() {
		c, err := factory.NewAccountCreator(kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, factory.GenerateAccount(c))
	}
	for _, goal := range []string{factory.GoalTravel, factory.GoalCar} {
		c, err := factory.NewRecommendationCreator(goal)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, factory.GenerateRecommendation(c))
	}
	fmt.Fprintln(w)
	return nil
}

func demoAbstractFactory(w io.Writer) error {
	fmt.Fprintln(w, "== Abstract Factory ==")
	for _, name := range theme.Names() {
		f, err := theme.ForName(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s theme\n", f.Name())
		fmt.Fprintln(w, theme.NewDashboard(f).Render())
	}
	fmt.Fprintln(w)
	return nil
}

func demoPrototype(w io.Writer) error {
	fmt.Fprintln(w, "== Prototype ==")
	r := prototype.NewPlanRegistry()
	prototype.SeedDefaults(r)

	savings, err := r.Create(prototype.SavingsPlan)
	if err != nil {
		return err
	}
	savings.Goal = "Save for a trip to Europe"
	savings.Duration = 12
	savings.MonthlySavings = 400
	fmt.Fprintf(w, "\nCloned and Customized Savings Plan:\n%s", savings.Details())

	investment, err := r.Create(prototype.InvestmentPlan)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nCloned Investment Plan:\n%s", investment.Details())
	return nil
}
