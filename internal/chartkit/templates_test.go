package chartkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hftviz/internal/analytics"
	"hftviz/internal/dataset"
	"hftviz/internal/errors"
	"hftviz/internal/table"
)

func benchmarkTable(t *testing.T) *table.Table {
	t.Helper()
	var records []dataset.BenchmarkRecord
	for _, p := range dataset.PatternOrder {
		for _, im := range dataset.ImplOrder {
			for i := 0; i < 10; i++ {
				records = append(records, dataset.BenchmarkRecord{
					Pattern: p, Impl: im, OpsPerSec: 1e7 + float64(i)*1e5,
				})
			}
		}
	}
	tbl, err := analytics.MedianThroughput(records)
	require.NoError(t, err)
	return tbl
}

func syntheticOrders(n int) []dataset.OrderRecord {
	base := time.Unix(1700000000, 0).UTC()
	orders := make([]dataset.OrderRecord, n)
	for i := range orders {
		side := dataset.SideBuy
		if i%3 == 0 {
			side = dataset.SideSell
		}
		orders[i] = dataset.OrderRecord{
			Timestamp:    base.Add(time.Duration(i) * 250 * time.Millisecond),
			InstrumentID: i % 4,
			Side:         side,
			Price:        100 + float64(i%10)*0.5,
		}
	}
	return orders
}

func syntheticPrices(n int) []dataset.PriceRecord {
	base := time.Unix(1700000000, 0).UTC()
	prices := make([]dataset.PriceRecord, n)
	for i := range prices {
		prices[i] = dataset.PriceRecord{
			Timestamp: base.Add(time.Duration(i) * 100 * time.Millisecond),
			Price:     100 + float64(i%7) - float64(i%3)*0.4,
		}
	}
	return prices
}

func TestThroughputFigure(t *testing.T) {
	fig, err := ThroughputFigure(benchmarkTable(t))
	require.NoError(t, err)

	require.Len(t, fig.Panels, 1)
	assert.Equal(t, throughputCaption, fig.Caption)
	assert.Equal(t, 2, fig.Cols)
}

func TestThroughputFigure_NilTable(t *testing.T) {
	_, err := ThroughputFigure(nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeComputation))
}

func TestThroughputFigure_GapForMissingPattern(t *testing.T) {
	records := []dataset.BenchmarkRecord{
		{Pattern: dataset.PatternHomogeneous, Impl: dataset.ImplVirtual, OpsPerSec: 1e7},
		{Pattern: dataset.PatternHomogeneous, Impl: dataset.ImplNonVirtual, OpsPerSec: 1.4e7},
	}
	tbl, err := analytics.MedianThroughput(records)
	require.NoError(t, err)

	fig, err := ThroughputFigure(tbl)
	require.NoError(t, err)
	require.Len(t, fig.Panels, 1)

	// Figure still composes; the absent categories appear as zero-height
	// placeholder bars so group alignment holds.
	require.NotNil(t, fig.Panels[0].Chart)
}

func TestOrderHistoryFigure(t *testing.T) {
	fig, err := OrderHistoryFigure(syntheticOrders(40))
	require.NoError(t, err)

	assert.Equal(t, "Trading Order Analysis", fig.Title)
	assert.Equal(t, 2, fig.Cols)
	assert.Equal(t, 2, fig.Rows)
	require.Len(t, fig.Panels, 4)
	for _, p := range fig.Panels {
		assert.NotNil(t, p.Chart)
	}
}

func TestOrderHistoryFigure_Empty(t *testing.T) {
	_, err := OrderHistoryFigure(nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeComputation))
}

func TestPriceAnalysisFigure(t *testing.T) {
	fig, err := PriceAnalysisFigure(0, syntheticPrices(12))
	require.NoError(t, err)

	assert.Equal(t, "Price Analysis - Instrument 0", fig.Title)
	require.Len(t, fig.Panels, 4)
}

func TestPriceAnalysisFigure_InstrumentInTitle(t *testing.T) {
	fig, err := PriceAnalysisFigure(7, syntheticPrices(20))
	require.NoError(t, err)
	assert.Equal(t, "Price Analysis - Instrument 7", fig.Title)
}

func TestPriceAnalysisFigure_TooShort(t *testing.T) {
	_, err := PriceAnalysisFigure(0, syntheticPrices(1))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeComputation))
}

func TestDashboardFigure(t *testing.T) {
	fig, err := DashboardFigure(syntheticOrders(40), syntheticPrices(30))
	require.NoError(t, err)

	assert.Equal(t, 3, fig.Cols)
	assert.Equal(t, 3, fig.Rows)
	require.Len(t, fig.Panels, 6)

	// The reserved correlation area renders a static label, no chart.
	last := fig.Panels[len(fig.Panels)-1]
	assert.Nil(t, last.Chart)
	assert.NotEmpty(t, last.Label)
	assert.Equal(t, 3, last.ColSpan)
}

func TestDashboardFigure_MissingInputs(t *testing.T) {
	_, err := DashboardFigure(nil, syntheticPrices(30))
	assert.True(t, errors.IsType(err, errors.ErrTypeComputation))

	_, err = DashboardFigure(syntheticOrders(10), nil)
	assert.True(t, errors.IsType(err, errors.ErrTypeComputation))
}

func TestMillionsFormatter(t *testing.T) {
	assert.Equal(t, "12M", millionsFormatter(12_000_000.0))
	assert.Equal(t, "0M", millionsFormatter(400_000.0))
	assert.Equal(t, "", millionsFormatter("not a float"))
}
