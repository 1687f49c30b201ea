// Package report orchestrates the reporting pipeline: load the CSV inputs,
// compute the aggregates, compose the figure, and persist the artifacts.
//
// Each report runs strictly linearly and aborts on the first failure, so a
// failed report never writes a file. Commands are routed through a dispatch
// table keyed by CommandID; both the interactive console and the one-shot
// generator call Dispatch. Every dispatched run carries a run ID in its log
// records.
package report
