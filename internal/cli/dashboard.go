package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/finplan/internal/theme"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard [" + strings.Join(theme.Names(), "|") + "]",
		Short: "Render a themed dashboard",
		Long: `Dashboard renders a chart and a table from one theme family. The theme
comes from the argument, then --theme, then config.yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.settings.Theme = args[0]
			}
			f, err := a.themeFactory()
			if err != nil {
				return a.fail(cmd, "resolve theme", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), theme.NewDashboard(f).Render())
			return err
		},
	}
}
