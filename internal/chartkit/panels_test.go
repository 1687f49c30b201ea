package chartkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hftviz/internal/analytics"
	"hftviz/internal/errors"
)

func TestBinValues(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	counts, edges := binValues(values, 5)

	require.Len(t, counts, 5)
	require.Len(t, edges, 5)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, len(values), total)

	// Max value lands in the last bin, not one past it.
	assert.Equal(t, []int{2, 2, 2, 2, 2}, counts)
	assert.Equal(t, 0.0, edges[0])
}

func TestBinValues_DegenerateRange(t *testing.T) {
	counts, edges := binValues([]float64{5, 5, 5}, 10)

	assert.Equal(t, []int{3}, counts)
	assert.Equal(t, []float64{5}, edges)
}

func TestHistogramChart_Empty(t *testing.T) {
	_, err := histogramChart("empty", nil, 30, "Frequency")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeComputation))
}

func TestHistogramChart_BarsMatchBins(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i % 17)
	}

	bc, err := histogramChart("prices", values, 30, "Frequency")
	require.NoError(t, err)

	assert.Len(t, bc.Bars, 30)
	assert.Equal(t, float64(RenderDPI), bc.DPI)
}

func TestSidePieChart_PercentageLabels(t *testing.T) {
	counts := []analytics.SideCount{
		{Side: "BUY", Count: 3},
		{Side: "SELL", Count: 1},
	}

	pc, err := sidePieChart("sides", counts)
	require.NoError(t, err)

	require.Len(t, pc.Values, 2)
	assert.Equal(t, "BUY 75.0%", pc.Values[0].Label)
	assert.Equal(t, "SELL 25.0%", pc.Values[1].Label)
}

func TestSidePieChart_Empty(t *testing.T) {
	_, err := sidePieChart("sides", nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeComputation))
}

func TestBarWidthFor(t *testing.T) {
	assert.Equal(t, 120, barWidthFor(1))
	assert.GreaterOrEqual(t, barWidthFor(1000), 4)

	wide := barWidthFor(6)
	narrow := barWidthFor(60)
	assert.Greater(t, wide, narrow)
}
