// Package logging provides structured logging for makoed.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the editor. Because makoed is a full-screen TUI,
// logging is silent by default: writing to stdout or stderr while the
// alternate screen is active would corrupt the display. Logging is only
// enabled when explicitly requested.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (store mutations, command dispatch)
//   - Info: Normal operations (file load/save, daemon reload)
//   - Warn: Non-fatal issues (malformed config lines, reload failures)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Config saved",
//	    zap.String("path", path),
//	    zap.Int("entries", store.Len()),
//	)
//
// # Configuration
//
// Set MAKOED_LOG_LEVEL=debug (or info/warn/error) in the environment, or
// pass --log-level to the CLI. Initialize at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
