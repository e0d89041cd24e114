// Package state provides the thread-safe snapshot store that hands
// resource data from the background poller to the UI.
//
// The Store mediates a single writer (the poller) and a single reader
// (the UI refresh tick) with an RWMutex and defensive copies on both
// sides, so the UI always renders an immutable snapshot and a failed
// poll never discards the last good data. There is no incremental
// patching: every successful poll replaces the whole snapshot, which is
// what lets the tabular engine recompute from scratch without retaining
// stale partial state.
package state
