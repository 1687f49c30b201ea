package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// ConfigFileName is the optional YAML configuration file looked up in the
// working directory.
const ConfigFileName = "hftviz.yaml"

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/hftviz.log"`
}

// InputConfig names the CSV artifacts produced by the benchmark and the
// trading-simulation engine. Files are resolved against the working
// directory, matching where those programs write them.
type InputConfig struct {
	BenchmarkCSV    string `yaml:"benchmark_csv" envconfig:"BENCHMARK_CSV" default:"results.csv" validate:"required"`
	OrderHistoryCSV string `yaml:"order_history_csv" envconfig:"ORDER_HISTORY_CSV" default:"order_history.csv" validate:"required"`
	// PricePattern must contain a single %d verb for the instrument id.
	PricePattern string `yaml:"price_pattern" envconfig:"PRICE_PATTERN" default:"price_data_instrument_%d.csv" validate:"required,contains=%d"`
}

// OutputConfig controls where rendered artifacts land.
type OutputConfig struct {
	PlotsDir string `yaml:"plots_dir" envconfig:"PLOTS_DIR" default:"saved_plots" validate:"required"`
}

// Load loads configuration from environment variables and an optional
// hftviz.yaml in the working directory. Environment variables (prefix
// HFTVIZ_) take precedence over the file; struct-tag defaults fill the rest.
func Load() (*Config, error) {
	var cfg Config

	if data, err := os.ReadFile(ConfigFileName); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	if err := envconfig.Process("HFTVIZ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment or a config file.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults fills zero values left by the YAML path. envconfig only
// applies struct-tag defaults to fields it owns, and a config file may
// legitimately set just one section.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = "logs/hftviz.log"
	}
	if cfg.Input.BenchmarkCSV == "" {
		cfg.Input.BenchmarkCSV = "results.csv"
	}
	if cfg.Input.OrderHistoryCSV == "" {
		cfg.Input.OrderHistoryCSV = "order_history.csv"
	}
	if cfg.Input.PricePattern == "" {
		cfg.Input.PricePattern = "price_data_instrument_%d.csv"
	}
	if cfg.Output.PlotsDir == "" {
		cfg.Output.PlotsDir = "saved_plots"
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}
