// Package logging provides structured logging utilities for netsnap
// components.
//
// It wraps the standard library slog package with netsnap defaults:
// JSON output to stderr, module/version context on every record,
// LOG_LEVEL environment configuration, and source location tracking for
// debug logs.
//
// Typical usage:
//
//	logging.SetDefaultStructuredLogger("netsnap", version)
//	slog.Info("snapshot started", "target", host)
package logging
