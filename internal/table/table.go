// Package table provides the small typed-table primitives the aggregation
// layer is built on: grouping, fixed-order reindexing, and rolling windows.
// Each is a standalone pure function so the derived-statistic code stays
// independently testable.
package table

// Key identifies a cell by its (row, column) category pair, e.g.
// (pattern, impl) for the throughput table.
type Key struct {
	Row string
	Col string
}

// Series is a float sequence where individual positions may be undefined,
// such as the warmup region of a rolling window. Values and Defined always
// have equal length.
type Series struct {
	Values  []float64
	Defined []bool
}

// NewSeries wraps raw values as a fully defined series.
func NewSeries(values []float64) Series {
	defined := make([]bool, len(values))
	for i := range defined {
		defined[i] = true
	}
	return Series{Values: values, Defined: defined}
}

// Len returns the total length including undefined positions.
func (s Series) Len() int {
	return len(s.Values)
}

// DefinedCount returns the number of defined positions.
func (s Series) DefinedCount() int {
	n := 0
	for _, d := range s.Defined {
		if d {
			n++
		}
	}
	return n
}

// At returns the value at i and whether it is defined.
func (s Series) At(i int) (float64, bool) {
	if !s.Defined[i] {
		return 0, false
	}
	return s.Values[i], true
}

// GroupBy buckets values by their parallel keys. keys and values must have
// equal length; extra elements of the longer slice are ignored.
func GroupBy(keys []Key, values []float64) map[Key][]float64 {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	groups := make(map[Key][]float64)
	for i := 0; i < n; i++ {
		groups[keys[i]] = append(groups[keys[i]], values[i])
	}
	return groups
}

// Table is a category table with fixed row and column order. Cells absent
// from the input are undefined and render as gaps, not zeros.
type Table struct {
	RowOrder []string
	ColOrder []string
	cells    map[Key]float64
}

// ReindexFixedOrder arranges scalar cells into the given canonical row and
// column order. Input keys outside the canonical orders are dropped;
// canonical positions missing from the input stay undefined.
func ReindexFixedOrder(cells map[Key]float64, rowOrder, colOrder []string) *Table {
	t := &Table{
		RowOrder: append([]string(nil), rowOrder...),
		ColOrder: append([]string(nil), colOrder...),
		cells:    make(map[Key]float64, len(cells)),
	}
	for _, row := range rowOrder {
		for _, col := range colOrder {
			key := Key{Row: row, Col: col}
			if v, ok := cells[key]; ok {
				t.cells[key] = v
			}
		}
	}
	return t
}

// Cell returns the value at (row, col) and whether it is defined.
func (t *Table) Cell(row, col string) (float64, bool) {
	v, ok := t.cells[Key{Row: row, Col: col}]
	return v, ok
}

// Column returns the column as a Series in row order.
func (t *Table) Column(col string) Series {
	s := Series{
		Values:  make([]float64, len(t.RowOrder)),
		Defined: make([]bool, len(t.RowOrder)),
	}
	for i, row := range t.RowOrder {
		s.Values[i], s.Defined[i] = t.Cell(row, col)
	}
	return s
}

// DefinedCells returns the number of defined cells.
func (t *Table) DefinedCells() int {
	return len(t.cells)
}

// Cells returns a copy of the defined cells, keyed by category pair.
func (t *Table) Cells() map[Key]float64 {
	out := make(map[Key]float64, len(t.cells))
	for k, v := range t.cells {
		out[k] = v
	}
	return out
}

// RollingWindow computes a trailing moving average of width w. The result
// has the same length as the input; positions before index w-1 are
// undefined, so exactly max(n-w+1, 0) positions are defined.
func RollingWindow(values []float64, w int) Series {
	s := Series{
		Values:  make([]float64, len(values)),
		Defined: make([]bool, len(values)),
	}
	if w <= 0 {
		return s
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= w {
			sum -= values[i-w]
		}
		if i >= w-1 {
			s.Values[i] = sum / float64(w)
			s.Defined[i] = true
		}
	}
	return s
}
