package report

import (
	"context"
	"fmt"

	"hftviz/internal/errors"
	"hftviz/internal/infrastructure"
)

// CommandID names one report command in the dispatch table.
type CommandID string

const (
	CmdThroughput CommandID = "throughput"
	CmdOrders     CommandID = "orders"
	CmdPrice      CommandID = "price"
	CmdDashboard  CommandID = "dashboard"
	CmdStats      CommandID = "stats"
)

// Request carries the per-command parameters. Only the price report reads
// Instrument.
type Request struct {
	Instrument int
}

// Handler executes one report command against the service.
type Handler func(ctx context.Context, s *Service, req Request) (*Result, error)

// handlers is the command dispatch table. Adding a report means adding a
// CommandID and one entry here.
var handlers = map[CommandID]Handler{
	CmdThroughput: func(ctx context.Context, s *Service, _ Request) (*Result, error) {
		return s.ThroughputReport(ctx)
	},
	CmdOrders: func(ctx context.Context, s *Service, _ Request) (*Result, error) {
		return s.OrderHistoryReport(ctx)
	},
	CmdPrice: func(ctx context.Context, s *Service, req Request) (*Result, error) {
		return s.PriceAnalysisReport(ctx, req.Instrument)
	},
	CmdDashboard: func(ctx context.Context, s *Service, _ Request) (*Result, error) {
		return s.DashboardReport(ctx)
	},
	CmdStats: func(ctx context.Context, s *Service, _ Request) (*Result, error) {
		return s.StatsWorkbook(ctx)
	},
}

// Commands returns the known command IDs in stable display order.
func Commands() []CommandID {
	return []CommandID{CmdThroughput, CmdOrders, CmdPrice, CmdDashboard, CmdStats}
}

// Dispatch looks the command up in the table and runs it. Every run gets a
// run ID so all log records of one report correlate.
func (s *Service) Dispatch(ctx context.Context, cmd CommandID, req Request) (*Result, error) {
	handler, ok := handlers[cmd]
	if !ok {
		return nil, errors.NewAppError(errors.ErrTypeNotFound,
			fmt.Sprintf("unknown command %q", cmd), nil).
			WithContext("command", string(cmd))
	}

	ctx = infrastructure.EnsureRunID(ctx)
	logger := infrastructure.LoggerWithContext(ctx)
	logger.InfoContext(ctx, "report started", "command", string(cmd))

	result, err := handler(ctx, s, req)
	if err != nil {
		logger.ErrorContext(ctx, "report failed",
			"command", string(cmd),
			"error_type", string(errors.TypeOf(err)),
			"error", err.Error())
		return nil, err
	}
	return result, nil
}
