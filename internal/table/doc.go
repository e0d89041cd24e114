// Package table is the interactive tabular data engine behind every
// list screen: multi-column filtering with live per-value counts,
// single-key stable sorting, column visibility, and the two windowing
// strategies (fixed-size pagination and scroll-driven virtualization).
//
// # Design
//
// The engine is generic over the record type and entirely pure: Apply,
// Paginate, and ComputeWindow are synchronous functions of their inputs
// with no retained state, recomputed from scratch on every keystroke,
// sort click, or data refresh. The record collection is owned by the
// fetch layer and is never mutated here.
//
// A Column descriptor's Value accessor is the only seam between the
// generic engine and a concrete record type; there is no reflection
// over record shape. Malformed records degrade to a single "unknown"
// bucket instead of aborting the pass.
//
// # Pipeline
//
// One Apply pass runs, in order:
//
//  1. the optional free-text search predicate over the full collection
//  2. per-column facets, each computed against the subset that passes
//     every other column's filter but not its own (cross-filter), so
//     toggling a value never hides that facet's other options
//  3. all column filters together (AND across columns, OR within one)
//  4. a stable sort by the active column, custom comparator first
//
// Descending order is the exact reverse of ascending, duplicates
// included.
//
// # Windowing
//
// Small tables page through Paginate, which clamps the page index
// whenever the result shrinks. Large tables window through
// ComputeWindow, which clamps the visible range for any scroll offset.
// Both consume the same Apply output; screens pick one.
//
// # Visibility
//
// Visibility tracks shown columns per table identity against an
// injected VisibilityStore, so persistence is an explicit dependency
// and the policy tests run against an in-memory store. Columns marked
// always-visible cannot be hidden no matter what the store says.
package table
