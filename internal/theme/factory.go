package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/finplan/pkg/types"
)

// Theme names accepted by ForName.
const (
	Dark         = "dark"
	Light        = "light"
	HighContrast = "high-contrast"
)

// Factory creates the components of one theme.
type Factory interface {
	// Name is the display name of the theme, as it appears in rendered output.
	Name() string
	CreateChart() Chart
	CreateTable() Table
}

var (
	_ Factory = DarkFactory{}
	_ Factory = LightFactory{}
	_ Factory = HighContrastFactory{}
)

// DarkFactory builds dark-theme components.
type DarkFactory struct{}

func (DarkFactory) Name() string       { return darkPalette.name }
func (DarkFactory) CreateChart() Chart { return DarkChart{chart{darkPalette}} }
func (DarkFactory) CreateTable() Table { return DarkTable{grid{darkPalette}} }

// LightFactory builds light-theme components.
type LightFactory struct{}

func (LightFactory) Name() string       { return lightPalette.name }
func (LightFactory) CreateChart() Chart { return LightChart{chart{lightPalette}} }
func (LightFactory) CreateTable() Table { return LightTable{grid{lightPalette}} }

// HighContrastFactory builds high-contrast components.
type HighContrastFactory struct{}

func (HighContrastFactory) Name() string { return highContrastPalette.name }
func (HighContrastFactory) CreateChart() Chart {
	return HighContrastChart{chart{highContrastPalette}}
}
func (HighContrastFactory) CreateTable() Table {
	return HighContrastTable{grid{highContrastPalette}}
}

var factories = map[string]Factory{
	Dark:         DarkFactory{},
	Light:        LightFactory{},
	HighContrast: HighContrastFactory{},
}

// Names lists the accepted theme names in display order.
func Names() []string {
	return []string{Dark, Light, HighContrast}
}

// ForName returns the factory for the named theme.
// Returns a *types.UnknownVariantError for names outside Names.
func ForName(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, &types.UnknownVariantError{Kind: "theme", Value: name}
	}
	return f, nil
}

// Dashboard pairs a chart and a table from the same factory.
type Dashboard struct {
	chart Chart
	table Table
}

// NewDashboard builds a dashboard from f.
func NewDashboard(f Factory) *Dashboard {
	return &Dashboard{
		chart: f.CreateChart(),
		table: f.CreateTable(),
	}
}

// Render stacks the chart above the table.
func (d *Dashboard) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left, d.chart.Render(), d.table.Render())
}
