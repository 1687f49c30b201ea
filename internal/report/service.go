package report

import (
	"context"
	"fmt"
	"log/slog"

	"hftviz/internal/analytics"
	"hftviz/internal/artifact"
	"hftviz/internal/chartkit"
	"hftviz/internal/config"
	"hftviz/internal/dataset"
	"hftviz/internal/infrastructure"
)

// Artifact base names. The writer appends the timestamp token.
const (
	throughputBase    = "throughput_comparison"
	orderHistoryBase  = "order_analysis"
	priceBaseTemplate = "price_analysis_instrument_%d"
	dashboardBase     = "trading_dashboard"
	workbookBase      = "statistics"
)

// DashboardInstrument is the instrument whose price series feeds the
// dashboard's price panel.
const DashboardInstrument = 0

// Stat is one console-facing statistic produced alongside a report.
// Order is significant for display, so results carry a slice, not a map.
type Stat struct {
	Name  string
	Value string
}

// Result describes a completed report: the shared base_timestamp token, the
// files written, and the statistics to show on the console.
type Result struct {
	Command  CommandID
	BaseName string
	Files    []string
	Stats    []Stat
}

// Service orchestrates the load, aggregate, compose, write pipeline. Each
// report method runs strictly linearly and aborts on the first failure, so
// a failed report never leaves a file behind.
type Service struct {
	paths  *config.Paths
	writer *artifact.Writer
	logger *slog.Logger
}

// NewService creates the report service.
func NewService(paths *config.Paths, writer *artifact.Writer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{paths: paths, writer: writer, logger: logger}
}

// ThroughputReport renders the grouped-median dispatch throughput chart.
func (s *Service) ThroughputReport(ctx context.Context) (*Result, error) {
	records, err := dataset.LoadBenchmarks(s.paths.BenchmarkCSV)
	if err != nil {
		return nil, err
	}
	medians, err := analytics.MedianThroughput(records)
	if err != nil {
		return nil, err
	}
	fig, err := chartkit.ThroughputFigure(medians)
	if err != nil {
		return nil, err
	}
	saved, err := s.writer.Save(fig, throughputBase, []artifact.Format{artifact.FormatPNG})
	if err != nil {
		return nil, err
	}

	stats := []Stat{{Name: "benchmark trials", Value: fmt.Sprintf("%d", len(records))}}
	for _, pattern := range medians.RowOrder {
		for _, impl := range medians.ColOrder {
			if v, ok := medians.Cell(pattern, impl); ok {
				stats = append(stats, Stat{
					Name:  fmt.Sprintf("median ops/sec %s/%s", pattern, impl),
					Value: fmt.Sprintf("%.0f", v),
				})
			}
		}
	}

	return s.finish(ctx, CmdThroughput, saved, stats), nil
}

// OrderHistoryReport renders the 2x2 order-history analysis grid.
func (s *Service) OrderHistoryReport(ctx context.Context) (*Result, error) {
	orders, err := dataset.LoadOrders(s.paths.OrderHistoryCSV)
	if err != nil {
		return nil, err
	}
	fig, err := chartkit.OrderHistoryFigure(orders)
	if err != nil {
		return nil, err
	}
	saved, err := s.writer.Save(fig, orderHistoryBase, []artifact.Format{artifact.FormatSVG})
	if err != nil {
		return nil, err
	}

	stats := []Stat{
		{Name: "total orders", Value: fmt.Sprintf("%d", len(orders))},
		{Name: "instruments", Value: fmt.Sprintf("%d", len(analytics.OrdersPerInstrument(orders)))},
	}
	for _, sc := range analytics.SideCounts(orders) {
		stats = append(stats, Stat{
			Name:  fmt.Sprintf("%s orders", sc.Side),
			Value: fmt.Sprintf("%d", sc.Count),
		})
	}
	if summary, err := analytics.Describe(analytics.OrderPrices(orders)); err == nil {
		stats = append(stats,
			Stat{Name: "mean order price", Value: fmt.Sprintf("%.2f", summary.Mean)},
			Stat{Name: "order price range", Value: fmt.Sprintf("%.2f - %.2f", summary.Min, summary.Max)},
		)
	}

	return s.finish(ctx, CmdOrders, saved, stats), nil
}

// PriceAnalysisReport renders the 2x2 price analysis grid for one
// instrument's price series.
func (s *Service) PriceAnalysisReport(ctx context.Context, instrumentID int) (*Result, error) {
	records, err := dataset.LoadPrices(s.paths.PriceCSV(instrumentID))
	if err != nil {
		return nil, err
	}
	fig, err := chartkit.PriceAnalysisFigure(instrumentID, records)
	if err != nil {
		return nil, err
	}
	base := fmt.Sprintf(priceBaseTemplate, instrumentID)
	saved, err := s.writer.Save(fig, base, []artifact.Format{artifact.FormatSVG})
	if err != nil {
		return nil, err
	}

	prices := analytics.PriceValues(records)
	summary, err := analytics.Describe(prices)
	if err != nil {
		return nil, err
	}
	returnStats, err := analytics.DescribeReturns(analytics.Returns(prices))
	if err != nil {
		return nil, err
	}

	stats := []Stat{
		{Name: "price samples", Value: fmt.Sprintf("%d", summary.Count)},
		{Name: "mean price", Value: fmt.Sprintf("%.2f", summary.Mean)},
		{Name: "price range", Value: fmt.Sprintf("%.2f - %.2f", summary.Min, summary.Max)},
		{Name: "mean return", Value: fmt.Sprintf("%.6f", returnStats.Mean)},
		{Name: "return std dev", Value: fmt.Sprintf("%.6f", returnStats.Std)},
		{Name: "annualized volatility", Value: fmt.Sprintf("%.4f", returnStats.AnnualizedVol)},
	}

	return s.finish(ctx, CmdPrice, saved, stats), nil
}

// DashboardReport renders the 3x3 composite trading dashboard.
func (s *Service) DashboardReport(ctx context.Context) (*Result, error) {
	orders, err := dataset.LoadOrders(s.paths.OrderHistoryCSV)
	if err != nil {
		return nil, err
	}
	prices, err := dataset.LoadPrices(s.paths.PriceCSV(DashboardInstrument))
	if err != nil {
		return nil, err
	}
	fig, err := chartkit.DashboardFigure(orders, prices)
	if err != nil {
		return nil, err
	}
	saved, err := s.writer.Save(fig, dashboardBase, []artifact.Format{artifact.FormatSVG})
	if err != nil {
		return nil, err
	}

	stats := []Stat{
		{Name: "total orders", Value: fmt.Sprintf("%d", len(orders))},
		{Name: "price samples", Value: fmt.Sprintf("%d", len(prices))},
	}

	return s.finish(ctx, CmdDashboard, saved, stats), nil
}

func (s *Service) finish(ctx context.Context, cmd CommandID, saved *artifact.Saved, stats []Stat) *Result {
	infrastructure.LoggerWithContext(ctx).InfoContext(ctx, "report complete",
		slog.String("command", string(cmd)),
		slog.String("base_name", saved.Token),
		slog.Int("files", len(saved.Files)))
	return &Result{
		Command:  cmd,
		BaseName: saved.Token,
		Files:    saved.Files,
		Stats:    stats,
	}
}
