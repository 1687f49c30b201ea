package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hftviz/internal/dataset"
)

func order(ts time.Time, id int, side string, price float64) dataset.OrderRecord {
	return dataset.OrderRecord{Timestamp: ts, InstrumentID: id, Side: side, Price: price}
}

func TestOrdersPerInstrument_SortedByID(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	orders := []dataset.OrderRecord{
		order(now, 3, dataset.SideBuy, 100),
		order(now, 0, dataset.SideSell, 101),
		order(now, 3, dataset.SideBuy, 102),
		order(now, 1, dataset.SideBuy, 103),
	}

	counts := OrdersPerInstrument(orders)

	require.Len(t, counts, 3)
	assert.Equal(t, InstrumentCount{InstrumentID: 0, Count: 1}, counts[0])
	assert.Equal(t, InstrumentCount{InstrumentID: 1, Count: 1}, counts[1])
	assert.Equal(t, InstrumentCount{InstrumentID: 3, Count: 2}, counts[2])
}

func TestSideCounts_CanonicalOrder(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	orders := []dataset.OrderRecord{
		order(now, 0, dataset.SideSell, 100),
		order(now, 0, dataset.SideBuy, 100),
		order(now, 0, dataset.SideSell, 100),
	}

	counts := SideCounts(orders)

	require.Len(t, counts, 2)
	assert.Equal(t, SideCount{Side: dataset.SideBuy, Count: 1}, counts[0])
	assert.Equal(t, SideCount{Side: dataset.SideSell, Count: 2}, counts[1])
}

func TestSideCounts_SingleSide(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	orders := []dataset.OrderRecord{order(now, 0, dataset.SideBuy, 100)}

	counts := SideCounts(orders)

	require.Len(t, counts, 1)
	assert.Equal(t, dataset.SideBuy, counts[0].Side)
}

func TestPerSecondCounts(t *testing.T) {
	base := time.Unix(1700000000, 0).UTC()
	orders := []dataset.OrderRecord{
		order(base.Add(100*time.Millisecond), 0, dataset.SideBuy, 100),
		order(base.Add(900*time.Millisecond), 0, dataset.SideSell, 100),
		order(base.Add(2500*time.Millisecond), 0, dataset.SideBuy, 100),
	}

	buckets := PerSecondCounts(orders)

	require.Len(t, buckets, 2)
	assert.Equal(t, base, buckets[0].Start)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, base.Add(2*time.Second), buckets[1].Start)
	assert.Equal(t, 1, buckets[1].Count)
}

func TestPerSecondCounts_Empty(t *testing.T) {
	assert.Empty(t, PerSecondCounts(nil))
}

func TestOrderPrices(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	orders := []dataset.OrderRecord{
		order(now, 0, dataset.SideBuy, 100.5),
		order(now, 1, dataset.SideSell, 99.5),
	}

	assert.Equal(t, []float64{100.5, 99.5}, OrderPrices(orders))
}
