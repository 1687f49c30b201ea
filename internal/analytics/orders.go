package analytics

import (
	"sort"
	"time"

	"hftviz/internal/dataset"
)

// InstrumentCount is the number of orders seen for one instrument.
type InstrumentCount struct {
	InstrumentID int
	Count        int
}

// OrdersPerInstrument counts orders per instrument id, sorted by id.
func OrdersPerInstrument(orders []dataset.OrderRecord) []InstrumentCount {
	counts := make(map[int]int)
	for _, o := range orders {
		counts[o.InstrumentID]++
	}

	out := make([]InstrumentCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, InstrumentCount{InstrumentID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InstrumentID < out[j].InstrumentID
	})
	return out
}

// SideCount is the number of orders per side, in canonical BUY, SELL order.
type SideCount struct {
	Side  string
	Count int
}

// SideCounts tallies BUY and SELL orders. Sides outside the canonical pair
// are ignored; the slice only carries sides that actually occur.
func SideCounts(orders []dataset.OrderRecord) []SideCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Side]++
	}

	var out []SideCount
	for _, side := range []string{dataset.SideBuy, dataset.SideSell} {
		if n := counts[side]; n > 0 {
			out = append(out, SideCount{Side: side, Count: n})
		}
	}
	return out
}

// TimeBucket is the number of orders that arrived within one wall-clock
// second.
type TimeBucket struct {
	Start time.Time
	Count int
}

// PerSecondCounts bins orders into 1-second buckets by arrival timestamp,
// sorted by bucket start. Empty buckets between occupied ones are not
// materialized, matching how the original tool grouped by floored second.
func PerSecondCounts(orders []dataset.OrderRecord) []TimeBucket {
	counts := make(map[time.Time]int)
	for _, o := range orders {
		counts[o.Timestamp.Truncate(time.Second)]++
	}

	out := make([]TimeBucket, 0, len(counts))
	for start, n := range counts {
		out = append(out, TimeBucket{Start: start, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// OrderPrices extracts the raw price column from the order history.
func OrderPrices(orders []dataset.OrderRecord) []float64 {
	out := make([]float64, len(orders))
	for i, o := range orders {
		out[i] = o.Price
	}
	return out
}
