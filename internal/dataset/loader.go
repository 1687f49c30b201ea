package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"hftviz/internal/errors"
)

// Column names required per file kind. Column order in the file is
// insignificant; unknown columns are ignored. The benchmark emits extra
// columns (repeat, orders, elapsed_ns, checksum) that this loader skips.
var (
	benchmarkColumns = []string{"pattern", "impl", "ops_per_sec"}
	orderColumns     = []string{"timestamp_ns", "instrument_id", "side", "price"}
	priceColumns     = []string{"timestamp_ns", "price"}
)

// LoadBenchmarks parses the throughput-benchmark results file.
// Failures are values: *errors.AppError with ErrTypeNotFound or ErrTypeSchema.
func LoadBenchmarks(path string) ([]BenchmarkRecord, error) {
	rows, cols, err := readCSV(path, benchmarkColumns)
	if err != nil {
		return nil, err
	}

	records := make([]BenchmarkRecord, 0, len(rows))
	for i, row := range rows {
		ops, err := parseFloat(row[cols["ops_per_sec"]])
		if err != nil {
			return nil, schemaError(path, i, "ops_per_sec", err)
		}
		records = append(records, BenchmarkRecord{
			Pattern:   strings.TrimSpace(row[cols["pattern"]]),
			Impl:      strings.TrimSpace(row[cols["impl"]]),
			OpsPerSec: ops,
		})
	}

	slog.Debug("loaded benchmark results",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return records, nil
}

// LoadOrders parses the synthetic order-history file.
func LoadOrders(path string) ([]OrderRecord, error) {
	rows, cols, err := readCSV(path, orderColumns)
	if err != nil {
		return nil, err
	}

	records := make([]OrderRecord, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTimestampNS(row[cols["timestamp_ns"]])
		if err != nil {
			return nil, schemaError(path, i, "timestamp_ns", err)
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[cols["instrument_id"]]))
		if err != nil {
			return nil, schemaError(path, i, "instrument_id", err)
		}
		price, err := parseFloat(row[cols["price"]])
		if err != nil {
			return nil, schemaError(path, i, "price", err)
		}
		records = append(records, OrderRecord{
			Timestamp:    ts,
			InstrumentID: id,
			Side:         strings.TrimSpace(row[cols["side"]]),
			Price:        price,
		})
	}

	slog.Debug("loaded order history",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return records, nil
}

// LoadPrices parses a per-instrument price series file. The caller knows the
// instrument id; the file itself only carries timestamps and prices.
func LoadPrices(path string) ([]PriceRecord, error) {
	rows, cols, err := readCSV(path, priceColumns)
	if err != nil {
		return nil, err
	}

	records := make([]PriceRecord, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTimestampNS(row[cols["timestamp_ns"]])
		if err != nil {
			return nil, schemaError(path, i, "timestamp_ns", err)
		}
		price, err := parseFloat(row[cols["price"]])
		if err != nil {
			return nil, schemaError(path, i, "price", err)
		}
		records = append(records, PriceRecord{Timestamp: ts, Price: price})
	}

	slog.Debug("loaded price series",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return records, nil
}

// readCSV reads the whole file and maps the required column names to their
// indices in the header row.
func readCSV(path string, required []string) ([][]string, map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NewNotFoundError(path)
		}
		return nil, nil, errors.NewSchemaError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.NewSchemaError(fmt.Sprintf("failed to parse %s", path), err).
			WithContext("path", path)
	}
	if len(all) == 0 {
		return nil, nil, errors.NewSchemaError(fmt.Sprintf("%s has no header row", path), nil).
			WithContext("path", path)
	}

	cols := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, errors.NewSchemaError(
				fmt.Sprintf("%s is missing required column %q", path, name), nil).
				WithContext("path", path).
				WithContext("column", name)
		}
	}

	return all[1:], cols, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseTimestampNS coerces a nanosecond epoch timestamp into a time.Time.
func parseTimestampNS(s string) (time.Time, error) {
	ns, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, int64(ns)).UTC(), nil
}

func schemaError(path string, row int, column string, cause error) *errors.AppError {
	// Row numbers are reported 1-based counting the header line, the way a
	// user sees the file in an editor.
	return errors.NewSchemaError(
		fmt.Sprintf("%s row %d: bad %s value", path, row+2, column), cause).
		WithContext("path", path).
		WithContext("column", column)
}
