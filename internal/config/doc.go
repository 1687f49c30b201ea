// Package config provides centralized configuration management for hftviz.
// It handles loading configuration from multiple sources, validation, and the
// managed path layout used by every other package.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. hftviz.yaml in the working directory
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern HFTVIZ_* for namespacing:
//
//	HFTVIZ_LOGGING_LEVEL=debug
//	HFTVIZ_OUTPUT_PLOTS_DIR=saved_plots
//	HFTVIZ_INPUT_BENCHMARK_CSV=results.csv
//
// # Paths
//
// Paths is the single source of truth for file locations. It is anchored at
// the current working directory because the external benchmark and
// simulation engine write their CSV artifacts there; the plots directory is
// created alongside them on demand.
package config
