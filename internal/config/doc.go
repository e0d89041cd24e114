// Package config loads kview's TOML configuration: where the backend
// listens, where kview writes its own log, the poll cadence, and the
// default page size for paginated screens. Missing files fall back to
// defaults; malformed files are errors.
package config
