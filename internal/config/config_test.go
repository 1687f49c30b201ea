package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "results.csv", cfg.Input.BenchmarkCSV)
	assert.Equal(t, "order_history.csv", cfg.Input.OrderHistoryCSV)
	assert.Equal(t, "price_data_instrument_%d.csv", cfg.Input.PricePattern)
	assert.Equal(t, "saved_plots", cfg.Output.PlotsDir)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
logging:
  level: debug
output:
  plots_dir: charts
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "charts", cfg.Output.PlotsDir)
	// Sections the file omits keep their defaults.
	assert.Equal(t, "results.csv", cfg.Input.BenchmarkCSV)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := "output:\n  plots_dir: charts\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0644))
	t.Setenv("HFTVIZ_OUTPUT_PLOTS_DIR", "env_plots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env_plots", cfg.Output.PlotsDir)
}

func TestLoad_InvalidLevel(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HFTVIZ_LOGGING_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewPathsAt(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	paths := NewPathsAt("/work", cfg)

	assert.Equal(t, filepath.Join("/work", "saved_plots"), paths.PlotsDir)
	assert.Equal(t, filepath.Join("/work", "results.csv"), paths.BenchmarkCSV)
	assert.Equal(t, filepath.Join("/work", "order_history.csv"), paths.OrderHistoryCSV)
	assert.Equal(t, filepath.Join("/work", "price_data_instrument_3.csv"), paths.PriceCSV(3))
}

func TestPaths_EnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{}
	applyDefaults(cfg)
	paths := NewPathsAt(dir, cfg)

	require.NoError(t, paths.EnsureDirectories())
	assert.DirExists(t, paths.PlotsDir)
	assert.DirExists(t, paths.LogsDir)

	// Second call is a no-op.
	require.NoError(t, paths.EnsureDirectories())
}

// chdirTemp switches the working directory to a fresh temp dir for the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}
