package chartkit

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"hftviz/internal/analytics"
	"hftviz/internal/dataset"
	"hftviz/internal/errors"
	"hftviz/internal/table"
)

// Histogram bin counts per template. Fixed, matching the original figures.
const (
	orderPriceBins     = 30
	priceBins          = 20
	dashboardPriceBins = 25
	returnsBins        = 20
)

// throughputCaption is the fixed literal describing the measurement
// protocol of the dispatch benchmark.
var throughputCaption = []string{
	"Chart shows the median throughput of 10 runs per configuration (N=2,000,000 orders).",
	"Non-virtual dispatch consistently outperforms virtual dispatch, with the largest gap",
	"in the predictable 'homogeneous' pattern due to inlining and branch prediction.",
}

// ThroughputFigure is the grouped bar comparison of median throughput per
// (pattern, impl). Patterns stay in canonical order; a pattern without data
// renders as a gap in its group.
func ThroughputFigure(medians *table.Table) (*Figure, error) {
	if medians == nil || medians.DefinedCells() == 0 {
		return nil, errors.NewComputationError("throughput figure needs at least one median cell")
	}

	var bars []chart.Value
	for _, pattern := range medians.RowOrder {
		for i, impl := range medians.ColOrder {
			label := ""
			if i == 0 {
				label = pattern
			}
			v, ok := medians.Cell(pattern, impl)
			if !ok {
				// Gap: keep group alignment without drawing a bar.
				bars = append(bars, chart.Value{Value: 0, Label: label})
				continue
			}
			fill := ColorNonVirtual
			if impl == dataset.ImplVirtual {
				fill = ColorVirtual
			}
			bars = append(bars, chart.Value{
				Value: v,
				Label: label,
				Style: chart.Style{FillColor: fill, StrokeColor: colorEdge, StrokeWidth: 1},
			})
		}
	}

	barChart := chart.BarChart{
		Title:      "HFT Order Processing: Virtual vs. Non-Virtual Dispatch Throughput",
		TitleStyle: titleStyle(),
		Width:      2 * CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		BarWidth:   barWidthFor(len(bars)) * 2,
		BarSpacing: barSpacingFor(len(bars)),
		XAxis:      axisStyle(),
		YAxis: chart.YAxis{
			Name:           "Throughput (Orders per Second)",
			Style:          axisStyle(),
			ValueFormatter: millionsFormatter,
		},
		Bars: bars,
	}

	return &Figure{
		Caption: throughputCaption,
		Cols:    2,
		Rows:    1,
		Panels: []Panel{
			{Chart: barChart, Col: 0, Row: 0, ColSpan: 2},
		},
	}, nil
}

// millionsFormatter renders throughput axis values divided by 1e6 with an
// "M" suffix, e.g. 12000000 -> "12M".
func millionsFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0fM", f/1e6)
	}
	return ""
}

// OrderHistoryFigure is the 2x2 order-analysis grid: orders per instrument,
// side proportion, price distribution, and order arrival rate.
func OrderHistoryFigure(orders []dataset.OrderRecord) (*Figure, error) {
	if len(orders) == 0 {
		return nil, errors.NewComputationError("order history figure needs at least one order")
	}

	instrumentBar := instrumentCountBar("Orders per Instrument", orders)

	sidePie, err := sidePieChart("Buy vs Sell Orders", analytics.SideCounts(orders))
	if err != nil {
		return nil, err
	}

	priceHist, err := histogramChart("Order Price Distribution",
		analytics.OrderPrices(orders), orderPriceBins, "Frequency")
	if err != nil {
		return nil, err
	}

	rateLine := orderRateChart("Orders Over Time", analytics.PerSecondCounts(orders))

	return &Figure{
		Title: "Trading Order Analysis",
		Cols:  2,
		Rows:  2,
		Panels: []Panel{
			{Chart: instrumentBar, Col: 0, Row: 0},
			{Chart: sidePie, Col: 1, Row: 0},
			{Chart: priceHist, Col: 0, Row: 1},
			{Chart: rateLine, Col: 1, Row: 1},
		},
	}, nil
}

// PriceAnalysisFigure is the 2x2 per-instrument price grid: raw timeline,
// distribution, moving-average overlay, and period returns with dispersion
// reference lines.
func PriceAnalysisFigure(instrumentID int, prices []dataset.PriceRecord) (*Figure, error) {
	if len(prices) < 2 {
		return nil, errors.NewComputationError(
			fmt.Sprintf("price analysis for instrument %d needs at least two samples", instrumentID))
	}

	values := analytics.PriceValues(prices)
	timestamps := priceTimestamps(prices)

	priceLine := timeLineChart("Price Movement", timestamps, values, "Price")

	priceHist, err := histogramChart("Price Distribution", values, priceBins, "Frequency")
	if err != nil {
		return nil, err
	}

	maOverlay := movingAverageChart(timestamps, values)

	returns := analytics.Returns(values)
	stats, err := analytics.DescribeReturns(returns)
	if err != nil {
		return nil, err
	}
	returnsLine := returnsChart(returns, stats)

	return &Figure{
		Title: fmt.Sprintf("Price Analysis - Instrument %d", instrumentID),
		Cols:  2,
		Rows:  2,
		Panels: []Panel{
			{Chart: priceLine, Col: 0, Row: 0},
			{Chart: priceHist, Col: 1, Row: 0},
			{Chart: maOverlay, Col: 0, Row: 1},
			{Chart: returnsLine, Col: 1, Row: 1},
		},
	}, nil
}

// DashboardFigure is the 3x3 composite: side pie, instrument-0 price
// movement, per-instrument counts, order-price and returns distributions,
// plus the area reserved for cross-instrument correlation.
func DashboardFigure(orders []dataset.OrderRecord, prices []dataset.PriceRecord) (*Figure, error) {
	if len(orders) == 0 {
		return nil, errors.NewComputationError("dashboard needs at least one order")
	}
	if len(prices) < 2 {
		return nil, errors.NewComputationError("dashboard needs at least two instrument-0 price samples")
	}

	sidePie, err := sidePieChart("Order Side Distribution", analytics.SideCounts(orders))
	if err != nil {
		return nil, err
	}

	values := analytics.PriceValues(prices)
	priceLine := timeLineChart("Price Movement - Instrument 0", priceTimestamps(prices), values, "Price")

	instrumentBar := instrumentCountBar("Orders per Instrument", orders)

	orderHist, err := histogramChart("Order Price Distribution",
		analytics.OrderPrices(orders), dashboardPriceBins, "Frequency")
	if err != nil {
		return nil, err
	}

	returns := analytics.Returns(values)
	returnsHist, err := histogramChart("Price Returns Distribution", returns, returnsBins, "Frequency")
	if err != nil {
		return nil, err
	}

	return &Figure{
		Cols: 3,
		Rows: 3,
		Panels: []Panel{
			{Chart: sidePie, Col: 0, Row: 0},
			{Chart: priceLine, Col: 1, Row: 0, ColSpan: 2},
			{Chart: instrumentBar, Col: 0, Row: 1},
			{Chart: orderHist, Col: 1, Row: 1},
			{Chart: returnsHist, Col: 2, Row: 1},
			{
				// Reserved: computes nothing until cross-instrument series exist.
				Label: []string{
					"Market Correlation Analysis",
					"Correlation Analysis Area",
					"(Expand with more instruments)",
				},
				Col: 0, Row: 2, ColSpan: 3,
			},
		},
	}, nil
}

// instrumentCountBar renders order counts per instrument id, sorted by id.
func instrumentCountBar(title string, orders []dataset.OrderRecord) chart.BarChart {
	counts := analytics.OrdersPerInstrument(orders)
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = fmt.Sprintf("%d", c.InstrumentID)
		values[i] = float64(c.Count)
	}
	return labeledBarChart(title, labels, values, colorHist)
}

// orderRateChart renders per-second order counts over time.
func orderRateChart(title string, buckets []analytics.TimeBucket) chart.Chart {
	xs := make([]time.Time, len(buckets))
	ys := make([]float64, len(buckets))
	for i, b := range buckets {
		xs[i] = b.Start
		ys[i] = float64(b.Count)
	}
	// A single bucket has no x range to draw; extend it by one second.
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(time.Second))
		ys = append(ys, ys[0])
	}
	c := timeLineChart(title, xs, ys, "Orders per Second")
	return c
}

// movingAverageChart overlays the raw price with its 5- and 10-point
// trailing moving averages. A window wider than the series contributes no
// overlay series.
func movingAverageChart(timestamps []time.Time, values []float64) chart.Chart {
	c := chart.Chart{
		Title:      "Price with Moving Averages",
		TitleStyle: titleStyle(),
		Width:      CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		XAxis: chart.XAxis{
			Style:          axisStyle(),
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04:05"),
		},
		YAxis: chart.YAxis{
			Name:  "Price",
			Style: axisStyle(),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Price",
				XValues: timestamps,
				YValues: values,
				Style:   chart.Style{StrokeColor: colorPrice, StrokeWidth: 1},
			},
		},
	}

	if ma := analytics.MovingAverage(values, analytics.ShortWindow); ma.DefinedCount() > 1 {
		c.Series = append(c.Series, chart.TimeSeries{
			Name:    "5-Point MA",
			XValues: timestamps[analytics.ShortWindow-1:],
			YValues: ma.Values[analytics.ShortWindow-1:],
			Style:   chart.Style{StrokeColor: colorShortMA, StrokeWidth: 2},
		})
	}
	if ma := analytics.MovingAverage(values, analytics.LongWindow); ma.DefinedCount() > 1 {
		c.Series = append(c.Series, chart.TimeSeries{
			Name:    "10-Point MA",
			XValues: timestamps[analytics.LongWindow-1:],
			YValues: ma.Values[analytics.LongWindow-1:],
			Style:   chart.Style{StrokeColor: colorLongMA, StrokeWidth: 2},
		})
	}

	c.Elements = []chart.Renderable{chart.Legend(&c)}
	return c
}

// returnsChart renders period returns by sample index with dashed
// reference lines at the mean and one standard deviation either side.
func returnsChart(returns []float64, stats analytics.ReturnStats) chart.Chart {
	ys := returns
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}
	// A single return has no x range to draw; duplicate it.
	if len(xs) == 1 {
		xs = []float64{0, 1}
		ys = []float64{ys[0], ys[0]}
	}
	xmax := xs[len(xs)-1]

	c := chart.Chart{
		Title:      "Price Returns (%)",
		TitleStyle: titleStyle(),
		Width:      CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		XAxis: chart.XAxis{
			Name:  "Time Index",
			Style: axisStyle(),
		},
		YAxis: chart.YAxis{
			Name:  "Return",
			Style: axisStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Returns",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: colorPrice, StrokeWidth: 1},
			},
			horizontalRule(fmt.Sprintf("Mean: %.4f", stats.Mean), 0, xmax, stats.Mean, chart.ColorRed),
			horizontalRule(fmt.Sprintf("Std Dev: %.4f", stats.Std), 0, xmax, stats.Std, chart.ColorGreen),
			horizontalRule("", 0, xmax, -stats.Std, chart.ColorGreen),
		},
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}
	return c
}

func priceTimestamps(prices []dataset.PriceRecord) []time.Time {
	out := make([]time.Time, len(prices))
	for i, p := range prices {
		out[i] = p.Timestamp
	}
	return out
}
