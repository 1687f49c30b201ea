// Package chartkit composes the four fixed multi-panel figure templates:
// the throughput comparison, the order-history grid, the per-instrument
// price-analysis grid, and the composite dashboard.
//
// Templates are not configurable. Each binds specific aggregates to panel
// roles, titles, and axis labels; the only parameter any template takes is
// the instrument id of the price-analysis grid. Individual panels are
// rendered with go-chart and stitched into one figure by a small grid
// compositor: raster output via image/draw, vector output via nested <svg>
// elements.
//
// A Figure is an in-memory artifact owned by the single report call that
// created it; persistence is the artifact package's job.
package chartkit
