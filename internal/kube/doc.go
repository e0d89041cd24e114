// Package kube is the fetch layer: a small HTTP client for the kview
// backend API and the typed records the list screens render. It owns
// transport, timeouts, and the list cap; it has no opinion on how the
// records are filtered, sorted, or windowed once delivered.
package kube
