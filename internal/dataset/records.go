package dataset

import "time"

// Order side labels as emitted by the simulation engine.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Benchmark pattern and implementation labels as emitted by the dispatch
// benchmark. PatternOrder is the canonical presentation order for every
// derived table and chart, regardless of input order.
const (
	PatternHomogeneous = "homogeneous"
	PatternBursty      = "bursty"
	PatternMixedRandom = "mixed_random"

	ImplVirtual    = "virtual"
	ImplNonVirtual = "non-virtual"
)

// PatternOrder is the fixed category order for throughput tables.
var PatternOrder = []string{PatternHomogeneous, PatternBursty, PatternMixedRandom}

// ImplOrder is the fixed series order for throughput tables.
var ImplOrder = []string{ImplVirtual, ImplNonVirtual}

// BenchmarkRecord is one trial run of the dispatch benchmark. Many rows per
// (pattern, impl) pair; row order carries no meaning.
type BenchmarkRecord struct {
	Pattern   string
	Impl      string
	OpsPerSec float64
}

// OrderRecord is one synthetic order from the simulation engine. Rows are in
// arrival order but not guaranteed sorted by timestamp.
type OrderRecord struct {
	Timestamp    time.Time
	InstrumentID int
	Side         string
	Price        float64
}

// PriceRecord is one sample of a per-instrument price series. Sequence order
// is meaningful: it drives the time-series and rolling computations. The
// series is assumed, not verified, to be monotonic in time.
type PriceRecord struct {
	Timestamp time.Time
	Price     float64
}
