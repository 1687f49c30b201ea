package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file paths in the application.
// Everything is anchored at the working directory: the benchmark and the
// simulation engine drop their CSVs there, and the plots directory is
// created next to them.
type Paths struct {
	WorkDir  string
	PlotsDir string
	LogsDir  string

	// Input CSV artifacts (written by the external programs)
	BenchmarkCSV    string
	OrderHistoryCSV string

	pricePattern string
}

// NewPaths resolves the managed path layout from the configuration.
func NewPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewPathsAt(wd, cfg), nil
}

// NewPathsAt anchors the path layout at an explicit directory. Tests use
// this with t.TempDir().
func NewPathsAt(dir string, cfg *Config) *Paths {
	return &Paths{
		WorkDir:         dir,
		PlotsDir:        resolve(dir, cfg.Output.PlotsDir),
		LogsDir:         resolve(dir, filepath.Dir(cfg.Logging.FilePath)),
		BenchmarkCSV:    resolve(dir, cfg.Input.BenchmarkCSV),
		OrderHistoryCSV: resolve(dir, cfg.Input.OrderHistoryCSV),
		pricePattern:    cfg.Input.PricePattern,
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// PriceCSV returns the per-instrument price series path. The filename
// encodes the instrument id.
func (p *Paths) PriceCSV(instrumentID int) string {
	return resolve(p.WorkDir, fmt.Sprintf(p.pricePattern, instrumentID))
}

// EnsureDirectories creates the managed directories if they don't exist.
// Creation is idempotent.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.PlotsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
