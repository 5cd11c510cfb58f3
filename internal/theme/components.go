package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Chart is a dashboard chart.
type Chart interface {
	Render() string
}

// Table is a dashboard table. RenderRows draws tabular data in the same theme.
type Table interface {
	Render() string
	RenderRows(headers []string, rows [][]string) string
}

type chart struct{ p palette }

func (c chart) Render() string {
	body := c.p.textStyle().Render(fmt.Sprintf("Rendering chart with %s theme", c.p.name))
	return c.p.frameStyle().Render(body)
}

type grid struct{ p palette }

func (g grid) Render() string {
	body := g.p.textStyle().Render(fmt.Sprintf("Rendering table with %s theme", g.p.name))
	return g.p.frameStyle().Render(body)
}

func (g grid) RenderRows(headers []string, rows [][]string) string {
	header, cell := g.p.headerStyle(), g.p.cellStyle()
	t := table.New().
		Border(g.p.border).
		BorderStyle(lipgloss.NewStyle().Foreground(g.p.accent)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.Render()
}

// DarkChart, LightChart, HighContrastChart and their tables are the concrete
// products. Only the matching factory constructs them.
type (
	DarkChart         struct{ chart }
	DarkTable         struct{ grid }
	LightChart        struct{ chart }
	LightTable        struct{ grid }
	HighContrastChart struct{ chart }
	HighContrastTable struct{ grid }
)
