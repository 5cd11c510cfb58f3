// Package theme provides matched families of dashboard components. Each
// Factory builds charts and tables for exactly one visual theme, so a
// dashboard assembled from a single factory is always consistent.
package theme

import "github.com/charmbracelet/lipgloss"

// palette is the fixed set of colours and borders for one theme.
type palette struct {
	name   string
	text   lipgloss.Color
	bg     lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Border
	bold   bool
}

var (
	darkPalette = palette{
		name:   "dark",
		text:   lipgloss.Color("#CCCCCC"),
		bg:     lipgloss.Color("#1E1E2E"),
		accent: lipgloss.Color("#89B4FA"),
		border: lipgloss.RoundedBorder(),
	}
	lightPalette = palette{
		name:   "light",
		text:   lipgloss.Color("#4C4F69"),
		bg:     lipgloss.Color("#EFF1F5"),
		accent: lipgloss.Color("#1E66F5"),
		border: lipgloss.NormalBorder(),
	}
	highContrastPalette = palette{
		name:   "high contrast",
		text:   lipgloss.Color("#FFFFFF"),
		bg:     lipgloss.Color("#000000"),
		accent: lipgloss.Color("#FFFF00"),
		border: lipgloss.ThickBorder(),
		bold:   true,
	}
)

// textStyle styles plain component output.
func (p palette) textStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.text).
		Background(p.bg).
		Bold(p.bold)
}

// frameStyle wraps a component in the theme border.
func (p palette) frameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(p.border).
		BorderForeground(p.accent).
		Padding(0, 1)
}

// headerStyle styles table header cells.
func (p palette) headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.accent).
		Bold(true).
		Padding(0, 1)
}

// cellStyle styles table body cells.
func (p palette) cellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.text).
		Bold(p.bold).
		Padding(0, 1)
}
