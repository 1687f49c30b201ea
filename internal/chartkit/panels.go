package chartkit

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"hftviz/internal/analytics"
	"hftviz/internal/errors"
)

// Fixed series colors. The throughput comparison keeps the exact colors the
// original tool used for the two dispatch strategies.
var (
	ColorVirtual    = drawing.ColorFromHex("ff6347")
	ColorNonVirtual = drawing.ColorFromHex("4682b4")

	colorPrice   = drawing.Color{R: 70, G: 130, B: 180, A: 255}
	colorShortMA = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	colorLongMA  = drawing.Color{R: 60, G: 179, B: 113, A: 255}
	colorHist    = drawing.Color{R: 100, G: 149, B: 237, A: 255}
	colorEdge    = drawing.Color{R: 40, G: 40, B: 40, A: 255}
)

const (
	panelTitleSize = 9
	axisFontSize   = 7
)

func titleStyle() chart.Style {
	return chart.Style{FontSize: panelTitleSize, FontColor: colorText}
}

func axisStyle() chart.Style {
	return chart.Style{FontSize: axisFontSize, FontColor: colorText}
}

// timeLineChart is a single-series line of values over wall-clock time.
func timeLineChart(title string, xs []time.Time, ys []float64, yName string) chart.Chart {
	return chart.Chart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		XAxis: chart.XAxis{
			Style:          axisStyle(),
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04:05"),
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Style: axisStyle(),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: colorPrice, StrokeWidth: 1.5},
			},
		},
	}
}

// indexLineChart is a single-series line of values over sample index.
func indexLineChart(title string, ys []float64, xName, yName string) chart.Chart {
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}
	return chart.Chart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		XAxis: chart.XAxis{
			Name:  xName,
			Style: axisStyle(),
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Style: axisStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: colorPrice, StrokeWidth: 1},
			},
		},
	}
}

// horizontalRule is a dashed reference line spanning [xmin, xmax] at y.
func horizontalRule(name string, xmin, xmax, y float64, color drawing.Color) chart.Series {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{xmin, xmax},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeColor:     color,
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5, 5},
		},
	}
}

// labeledBarChart is a bar chart over pre-counted categories.
func labeledBarChart(title string, labels []string, values []float64, fill drawing.Color) chart.BarChart {
	bars := make([]chart.Value, len(values))
	for i, v := range values {
		bars[i] = chart.Value{
			Value: v,
			Label: labels[i],
			Style: chart.Style{FillColor: fill, StrokeColor: colorEdge, StrokeWidth: 1},
		}
	}
	return chart.BarChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		BarWidth:   barWidthFor(len(bars)),
		BarSpacing: barSpacingFor(len(bars)),
		XAxis:      axisStyle(),
		YAxis: chart.YAxis{
			Style: axisStyle(),
		},
		Bars: bars,
	}
}

// histogramChart bins values into the given number of equal-width bins and
// renders them as adjacent bars. Bin edges label roughly every fifth bar.
func histogramChart(title string, values []float64, bins int, xName string) (chart.BarChart, error) {
	if len(values) == 0 {
		return chart.BarChart{}, errors.NewComputationError(
			fmt.Sprintf("histogram %q over empty sequence", title))
	}

	counts, edges := binValues(values, bins)

	labelEvery := len(counts) / 5
	if labelEvery < 1 {
		labelEvery = 1
	}

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		label := ""
		if i%labelEvery == 0 {
			label = fmt.Sprintf("%.2f", edges[i])
		}
		bars[i] = chart.Value{
			Value: float64(c),
			Label: label,
			Style: chart.Style{FillColor: colorHist, StrokeColor: colorEdge, StrokeWidth: 1},
		}
	}

	return chart.BarChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		BarWidth:   barWidthFor(len(bars)),
		BarSpacing: 2,
		XAxis:      axisStyle(),
		YAxis: chart.YAxis{
			Name:  xName,
			Style: axisStyle(),
		},
		Bars: bars,
	}, nil
}

// binValues computes equal-width histogram counts and the lower edge of
// each bin. A degenerate range collapses into a single bin.
func binValues(values []float64, bins int) ([]int, []float64) {
	if bins < 1 {
		bins = 1
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return []int{len(values)}, []float64{min}
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	edges := make([]float64, bins)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1 // max value falls into the last bin
		}
		counts[idx]++
	}
	return counts, edges
}

// sidePieChart renders the BUY/SELL proportion with percentage labels.
func sidePieChart(title string, counts []analytics.SideCount) (chart.PieChart, error) {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return chart.PieChart{}, errors.NewComputationError(
			fmt.Sprintf("pie %q over empty order history", title))
	}

	values := make([]chart.Value, len(counts))
	for i, c := range counts {
		pct := 100 * float64(c.Count) / float64(total)
		values[i] = chart.Value{
			Value: float64(c.Count),
			Label: fmt.Sprintf("%s %.1f%%", c.Side, pct),
		}
	}

	return chart.PieChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      CellWidth,
		Height:     CellHeight,
		DPI:        RenderDPI,
		Values:     values,
	}, nil
}

// barWidthFor sizes bars so the full set fits the panel canvas.
func barWidthFor(count int) int {
	if count < 1 {
		count = 1
	}
	w := (CellWidth - 250) / count
	if w < 4 {
		w = 4
	}
	if w > 120 {
		w = 120
	}
	return w
}

func barSpacingFor(count int) int {
	if count > 20 {
		return 2
	}
	return 12
}
