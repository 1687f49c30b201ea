// Package analytics computes the derived statistics behind every report:
// grouped medians, rolling moving averages, period returns and their
// dispersion, and descriptive summaries. Every function is pure; inputs are
// never mutated and recomputation is idempotent.
package analytics

import (
	"math"

	"hftviz/internal/dataset"
	"hftviz/internal/errors"
	"hftviz/internal/table"
)

// TradingDaysPerYear is the annualization factor applied to return
// dispersion, kept verbatim from the calendar-trading-day convention the
// original tool used. It is applied regardless of the data's actual
// sampling cadence.
const TradingDaysPerYear = 252

// Supported moving-average windows. Fixed, not configurable.
const (
	ShortWindow = 5
	LongWindow  = 10
)

// MedianThroughput groups benchmark trials by (pattern, impl), takes the
// median ops/sec per group, and reindexes the rows into the canonical
// pattern order. Patterns absent from the input become gaps; the columns
// are exactly the impls present in the input, in canonical order.
func MedianThroughput(records []dataset.BenchmarkRecord) (*table.Table, error) {
	if len(records) == 0 {
		return nil, errors.NewComputationError("no benchmark records to aggregate")
	}

	keys := make([]table.Key, len(records))
	values := make([]float64, len(records))
	implSeen := make(map[string]bool)
	for i, r := range records {
		keys[i] = table.Key{Row: r.Pattern, Col: r.Impl}
		values[i] = r.OpsPerSec
		implSeen[r.Impl] = true
	}

	groups := table.GroupBy(keys, values)
	cells := make(map[table.Key]float64, len(groups))
	for key, group := range groups {
		median, err := Median(group)
		if err != nil {
			return nil, err
		}
		cells[key] = median
	}

	var implOrder []string
	for _, impl := range dataset.ImplOrder {
		if implSeen[impl] {
			implOrder = append(implOrder, impl)
		}
	}

	return table.ReindexFixedOrder(cells, dataset.PatternOrder, implOrder), nil
}

// MovingAverage is the trailing moving average of the price sequence with
// window w. Positions before index w-1 are undefined.
func MovingAverage(prices []float64, w int) table.Series {
	return table.RollingWindow(prices, w)
}

// Returns computes period returns: element i is (p[i+1]-p[i])/p[i]. The
// first price has no defined return and is dropped, so the result has
// length n-1 (or 0 for inputs shorter than 2).
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, len(prices)-1)
	for i := 0; i+1 < len(prices); i++ {
		out[i] = (prices[i+1] - prices[i]) / prices[i]
	}
	return out
}

// ReturnStats describes the dispersion of a returns sequence.
type ReturnStats struct {
	Mean          float64
	Std           float64
	AnnualizedVol float64
}

// DescribeReturns computes mean, sample standard deviation, and annualized
// volatility (std × √252) of a returns sequence.
func DescribeReturns(returns []float64) (ReturnStats, error) {
	mean, err := Mean(returns)
	if err != nil {
		return ReturnStats{}, errors.NewComputationError("return stats of empty sequence")
	}
	std := Std(returns)
	return ReturnStats{
		Mean:          mean,
		Std:           std,
		AnnualizedVol: std * math.Sqrt(TradingDaysPerYear),
	}, nil
}

// Summary is the descriptive summary of a price sequence.
type Summary struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
	Range float64
}

// Describe computes count, mean, min, max, and range of a price sequence.
func Describe(prices []float64) (Summary, error) {
	if len(prices) == 0 {
		return Summary{}, errors.NewComputationError("describe of empty sequence")
	}

	mean, _ := Mean(prices)
	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	return Summary{
		Count: len(prices),
		Mean:  mean,
		Min:   min,
		Max:   max,
		Range: max - min,
	}, nil
}

// PriceValues extracts the raw price sequence from a loaded series.
func PriceValues(records []dataset.PriceRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Price
	}
	return out
}
