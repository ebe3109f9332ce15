// Package logging provides concrete implementations of the soso.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: plain lines on stderr, [VERBOSE] and [ERROR] prefixes
//   - JSONLogger: zerolog JSON objects for machine-readable batch logs
//   - NullLogger: discards all messages (useful for testing)
//
// Loggers that can describe a finished record with structured fields also
// implement RecordLogger; the batch runner prefers it when available.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
