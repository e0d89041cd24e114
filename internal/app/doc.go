// Package app is the composition root for kview.
//
// Run wires configuration, user preferences, the backend API client,
// the shared snapshot store, the background poller, and the TUI, then
// blocks until the user exits or the context is cancelled.
//
// The poller refreshes the store on a fixed cadence (config
// poll_seconds, default 5s), replacing the whole snapshot on success
// and recording the error on failure so the UI can show an offline
// banner while keeping the last good data on screen. Consecutive
// failures back off exponentially up to 30s. Fetch errors are
// recoverable and logged; only configuration and client construction
// errors abort startup.
package app
