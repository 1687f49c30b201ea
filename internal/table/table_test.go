package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy(t *testing.T) {
	keys := []Key{
		{Row: "homogeneous", Col: "virtual"},
		{Row: "homogeneous", Col: "virtual"},
		{Row: "bursty", Col: "non-virtual"},
	}
	values := []float64{1, 2, 3}

	groups := GroupBy(keys, values)

	require.Len(t, groups, 2)
	assert.Equal(t, []float64{1, 2}, groups[Key{Row: "homogeneous", Col: "virtual"}])
	assert.Equal(t, []float64{3}, groups[Key{Row: "bursty", Col: "non-virtual"}])
}

func TestGroupBy_Empty(t *testing.T) {
	assert.Empty(t, GroupBy(nil, nil))
}

func TestReindexFixedOrder(t *testing.T) {
	cells := map[Key]float64{
		{Row: "bursty", Col: "virtual"}:      2,
		{Row: "homogeneous", Col: "virtual"}: 1,
		{Row: "unknown", Col: "virtual"}:     9, // outside canonical order: dropped
	}

	tbl := ReindexFixedOrder(cells,
		[]string{"homogeneous", "bursty", "mixed_random"},
		[]string{"virtual"})

	assert.Equal(t, []string{"homogeneous", "bursty", "mixed_random"}, tbl.RowOrder)

	v, ok := tbl.Cell("homogeneous", "virtual")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	// Absent category is a gap, not an error.
	_, ok = tbl.Cell("mixed_random", "virtual")
	assert.False(t, ok)

	assert.Equal(t, 2, tbl.DefinedCells())
}

func TestReindexFixedOrder_Idempotent(t *testing.T) {
	cells := map[Key]float64{
		{Row: "homogeneous", Col: "virtual"}: 1,
		{Row: "bursty", Col: "virtual"}:      2,
	}
	order := []string{"homogeneous", "bursty", "mixed_random"}

	first := ReindexFixedOrder(cells, order, []string{"virtual"})
	second := ReindexFixedOrder(first.Cells(), order, []string{"virtual"})

	assert.Equal(t, first.RowOrder, second.RowOrder)
	assert.Equal(t, first.Cells(), second.Cells())
}

func TestTable_Column(t *testing.T) {
	cells := map[Key]float64{
		{Row: "homogeneous", Col: "virtual"}:  10,
		{Row: "mixed_random", Col: "virtual"}: 30,
	}
	tbl := ReindexFixedOrder(cells,
		[]string{"homogeneous", "bursty", "mixed_random"},
		[]string{"virtual"})

	col := tbl.Column("virtual")

	require.Equal(t, 3, col.Len())
	assert.Equal(t, []bool{true, false, true}, col.Defined)
	assert.Equal(t, 10.0, col.Values[0])
	assert.Equal(t, 30.0, col.Values[2])
}

func TestRollingWindow(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	s := RollingWindow(values, 3)

	require.Equal(t, 5, s.Len())
	assert.Equal(t, 3, s.DefinedCount())

	_, ok := s.At(0)
	assert.False(t, ok)
	_, ok = s.At(1)
	assert.False(t, ok)

	v, ok := s.At(2)
	require.True(t, ok)
	assert.InDelta(t, 2.0, v, 1e-12)

	v, _ = s.At(4)
	assert.InDelta(t, 4.0, v, 1e-12)
}

func TestRollingWindow_DefinedCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		w       int
		defined int
	}{
		{name: "12 points window 5", n: 12, w: 5, defined: 8},
		{name: "12 points window 10", n: 12, w: 10, defined: 3},
		{name: "window equals length", n: 5, w: 5, defined: 1},
		{name: "window longer than series", n: 3, w: 10, defined: 0},
		{name: "empty series", n: 0, w: 5, defined: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, tt.n)
			for i := range values {
				values[i] = float64(i)
			}

			s := RollingWindow(values, tt.w)

			assert.Equal(t, tt.n, s.Len())
			assert.Equal(t, tt.defined, s.DefinedCount())
		})
	}
}

func TestRollingWindow_MeanOfTrailingValues(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60}
	w := 4

	s := RollingWindow(values, w)

	for i := w - 1; i < len(values); i++ {
		var sum float64
		for j := i - w + 1; j <= i; j++ {
			sum += values[j]
		}
		v, ok := s.At(i)
		require.True(t, ok)
		assert.InDelta(t, sum/float64(w), v, 1e-12)
	}
}

func TestNewSeries(t *testing.T) {
	s := NewSeries([]float64{1, 2})
	assert.Equal(t, 2, s.DefinedCount())
}
