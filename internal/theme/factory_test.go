package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/finplan/pkg/types"
)

func TestFactoriesProduceMatchedFamilies(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			f, err := ForName(name)
			require.NoError(t, err)

			chart := f.CreateChart().Render()
			table := f.CreateTable().Render()

			assert.Contains(t, chart, "Rendering chart with "+f.Name()+" theme")
			assert.Contains(t, table, "Rendering table with "+f.Name()+" theme")
		})
	}
}

func TestFactoryNames(t *testing.T) {
	assert.Equal(t, "dark", DarkFactory{}.Name())
	assert.Equal(t, "light", LightFactory{}.Name())
	assert.Equal(t, "high contrast", HighContrastFactory{}.Name())
}

func TestConcreteProductTypes(t *testing.T) {
	assert.IsType(t, DarkChart{}, DarkFactory{}.CreateChart())
	assert.IsType(t, DarkTable{}, DarkFactory{}.CreateTable())
	assert.IsType(t, LightChart{}, LightFactory{}.CreateChart())
	assert.IsType(t, LightTable{}, LightFactory{}.CreateTable())
	assert.IsType(t, HighContrastChart{}, HighContrastFactory{}.CreateChart())
	assert.IsType(t, HighContrastTable{}, HighContrastFactory{}.CreateTable())
}

func TestForNameUnknown(t *testing.T) {
	f, err := ForName("solarized")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, types.ErrUnknownVariant)
}

func TestDashboardRender(t *testing.T) {
	out := NewDashboard(LightFactory{}).Render()

	chartAt := strings.Index(out, "Rendering chart with light theme")
	tableAt := strings.Index(out, "Rendering table with light theme")
	require.GreaterOrEqual(t, chartAt, 0, out)
	require.GreaterOrEqual(t, tableAt, 0, out)
	assert.Less(t, chartAt, tableAt, "chart renders above table")
	assert.NotContains(t, out, "dark")
}

func TestTableRenderRows(t *testing.T) {
	out := DarkFactory{}.CreateTable().RenderRows(
		[]string{"Plan", "Goal"},
		[][]string{{"Savings Plan", "Save for a car"}, {"Investment Plan", "Invest in stocks"}},
	)
	for _, want := range []string{"Plan", "Goal", "Savings Plan", "Save for a car", "Invest in stocks"} {
		assert.Contains(t, out, want)
	}
}
