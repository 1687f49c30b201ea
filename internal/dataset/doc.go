// Package dataset loads the CSV artifacts produced by the external dispatch
// benchmark and the trading-simulation engine into typed records.
//
// The loaders perform structural parsing and declared type coercion only
// (nanosecond timestamps become time.Time); they do not validate value
// ranges or ordering. Failures never propagate as panics: a missing file is
// an ErrTypeNotFound AppError, a missing column or uncoercible cell is
// ErrTypeSchema, and the caller decides what the failure means for its
// report.
package dataset
