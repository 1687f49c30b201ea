package main

import (
	"context"
	"log/slog"
	"os"

	"hftviz/internal/artifact"
	"hftviz/internal/config"
	"hftviz/internal/console"
	"hftviz/internal/infrastructure"
	"hftviz/internal/report"
)

func main() {
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

	logger.Info("Starting visualization tool",
		slog.String("work_dir", paths.WorkDir),
		slog.String("plots_dir", paths.PlotsDir))

	writer := artifact.NewWriter(paths.PlotsDir, logger)
	service := report.NewService(paths, writer, logger)
	c := console.New(os.Stdin, os.Stdout, service, paths, console.SystemOpener{}, logger)

	if err := c.Run(context.Background()); err != nil {
		logger.Error("Console loop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
