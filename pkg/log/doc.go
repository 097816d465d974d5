// Package log provides structured event logging for subjects and subscribers.
//
// This package defines the Logger interface and the Event type used to capture
// registry activity (subscribe, unsubscribe, availability changes and
// notification fan-out). It is separate from operational logging (slog): the
// event log is a complete machine-readable trace that can be replayed and
// analyzed with the notify-log tool.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// Human-readable console lines
//	cfg.Logger = log.NewConsoleLogger(os.Stdout)
//
//	// For development: log to slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For analysis: write to binary file
//	cfg.Logger, _ = log.NewFileLogger("restock.elog")
//
//	// Several at once: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(console, fileLogger)
//
// # Event Kinds
//
// Every event carries the subject's ID and name plus a Kind:
//   - SUBSCRIBED / UNSUBSCRIBED: registry membership changed
//   - AVAILABLE / UNAVAILABLE: availability flag was set
//   - NOTIFYING: a notification round started (Count subscribers)
//   - DELIVERED: one subscriber received a notification
//
// # File Format
//
// Log files use CBOR encoding with .elog extension.
package log
