package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"hftviz/internal/analytics"
	"hftviz/internal/dataset"
	"hftviz/internal/errors"
	"hftviz/internal/table"
)

// StatsWorkbook exports the aggregate tables of all three inputs into one
// Excel workbook, one sheet per table.
func (s *Service) StatsWorkbook(ctx context.Context) (*Result, error) {
	benchmarks, err := dataset.LoadBenchmarks(s.paths.BenchmarkCSV)
	if err != nil {
		return nil, err
	}
	orders, err := dataset.LoadOrders(s.paths.OrderHistoryCSV)
	if err != nil {
		return nil, err
	}
	priceRecords, err := dataset.LoadPrices(s.paths.PriceCSV(DashboardInstrument))
	if err != nil {
		return nil, err
	}

	medians, err := analytics.MedianThroughput(benchmarks)
	if err != nil {
		return nil, err
	}
	prices := analytics.PriceValues(priceRecords)
	summary, err := analytics.Describe(prices)
	if err != nil {
		return nil, err
	}
	returnStats, err := analytics.DescribeReturns(analytics.Returns(prices))
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	writeThroughputSheet(f, medians)
	writeOrderSheet(f, orders)
	writePairSheet(f, "Prices", []Stat{
		{Name: "count", Value: fmt.Sprintf("%d", summary.Count)},
		{Name: "mean", Value: fmt.Sprintf("%.4f", summary.Mean)},
		{Name: "min", Value: fmt.Sprintf("%.4f", summary.Min)},
		{Name: "max", Value: fmt.Sprintf("%.4f", summary.Max)},
		{Name: "range", Value: fmt.Sprintf("%.4f", summary.Range)},
	})
	writePairSheet(f, "Returns", []Stat{
		{Name: "mean", Value: fmt.Sprintf("%.6f", returnStats.Mean)},
		{Name: "std dev", Value: fmt.Sprintf("%.6f", returnStats.Std)},
		{Name: "annualized volatility", Value: fmt.Sprintf("%.4f", returnStats.AnnualizedVol)},
	})
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.NewWriteError("encode statistics workbook", err)
	}
	saved, err := s.writer.SaveBytes(workbookBase, "xlsx", buf.Bytes())
	if err != nil {
		return nil, err
	}

	stats := []Stat{
		{Name: "sheets", Value: "4"},
		{Name: "benchmark trials", Value: fmt.Sprintf("%d", len(benchmarks))},
		{Name: "total orders", Value: fmt.Sprintf("%d", len(orders))},
		{Name: "price samples", Value: fmt.Sprintf("%d", len(prices))},
	}

	return s.finish(ctx, CmdStats, saved, stats), nil
}

// cellName converts 1-based coordinates to an A1-style reference.
func cellName(col, row int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return fmt.Sprintf("%s%d", name, row)
}

func writeThroughputSheet(f *excelize.File, medians *table.Table) {
	const sheet = "Throughput"
	f.NewSheet(sheet)

	f.SetCellValue(sheet, "A1", "pattern")
	for c, impl := range medians.ColOrder {
		f.SetCellValue(sheet, cellName(c+2, 1), impl)
	}
	for r, pattern := range medians.RowOrder {
		f.SetCellValue(sheet, cellName(1, r+2), pattern)
		for c, impl := range medians.ColOrder {
			if v, ok := medians.Cell(pattern, impl); ok {
				f.SetCellValue(sheet, cellName(c+2, r+2), v)
			}
		}
	}
}

func writeOrderSheet(f *excelize.File, orders []dataset.OrderRecord) {
	const sheet = "Orders"
	f.NewSheet(sheet)

	f.SetCellValue(sheet, "A1", "side")
	f.SetCellValue(sheet, "B1", "count")
	row := 2
	for _, sc := range analytics.SideCounts(orders) {
		f.SetCellValue(sheet, cellName(1, row), sc.Side)
		f.SetCellValue(sheet, cellName(2, row), sc.Count)
		row++
	}

	row++
	f.SetCellValue(sheet, cellName(1, row), "instrument")
	f.SetCellValue(sheet, cellName(2, row), "orders")
	row++
	for _, ic := range analytics.OrdersPerInstrument(orders) {
		f.SetCellValue(sheet, cellName(1, row), ic.InstrumentID)
		f.SetCellValue(sheet, cellName(2, row), ic.Count)
		row++
	}
}

func writePairSheet(f *excelize.File, sheet string, pairs []Stat) {
	f.NewSheet(sheet)
	f.SetCellValue(sheet, "A1", "statistic")
	f.SetCellValue(sheet, "B1", "value")
	for i, p := range pairs {
		f.SetCellValue(sheet, cellName(1, i+2), p.Name)
		f.SetCellValue(sheet, cellName(2, i+2), p.Value)
	}
}
