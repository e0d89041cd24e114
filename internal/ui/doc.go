// Package ui renders the kview terminal interface with Bubble Tea.
//
// The Model owns two screens over the shared state snapshot. Workloads
// is a paginated table; Events is a virtualized list windowed to the
// viewport. Both screens run their rows through the table engine, so
// search, facet filters, sorting, and column visibility behave the same
// way on each, and both preserve the selected row across refreshes by
// record key rather than by index.
//
// Modes gate key handling. List mode navigates; search mode drives the
// text input with a live regex preview; the filter and column overlays
// edit FilterState and Visibility directly and recompute on every
// toggle. A poll tick refreshes the snapshot from the state store on a
// fixed interval.
package ui
