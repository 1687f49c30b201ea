package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"hftviz/internal/artifact"
	"hftviz/internal/config"
	"hftviz/internal/infrastructure"
	"hftviz/internal/report"
)

// chartgen generates one report non-interactively, for scripts and CI.
func main() {
	command := flag.String("report", "", commandUsage())
	instrument := flag.Int("instrument", 0, "instrument id for the price report")
	flag.Parse()

	if *command == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	paths, err := config.NewPaths(cfg)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Generating report",
		slog.String("report", *command),
		slog.Int("instrument", *instrument),
		slog.String("plots_dir", paths.PlotsDir))

	writer := artifact.NewWriter(paths.PlotsDir, logger)
	service := report.NewService(paths, writer, logger)

	result, err := service.Dispatch(context.Background(),
		report.CommandID(*command), report.Request{Instrument: *instrument})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, file := range result.Files {
		fmt.Println(file)
	}
	for _, stat := range result.Stats {
		logger.Info("statistic",
			slog.String("name", stat.Name),
			slog.String("value", stat.Value))
	}
}

func commandUsage() string {
	names := make([]string, 0, len(report.Commands()))
	for _, id := range report.Commands() {
		names = append(names, string(id))
	}
	return "report to generate: " + strings.Join(names, " | ")
}
