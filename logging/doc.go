// Package logging provides a minimal logging interface and adapters for the
// sfc library.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) the dispatch adapters use for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (the adapters' default)
//   - HarnessLogger with contextual helpers for grading runs
//
// Usage:
//
//	logger := logging.NewHarnessLogger(logging.LogLevelDebug, "text", false)
//	maker, err := caller.NewMaker(def, caller.WithLogger(logger))
//
// The design intentionally keeps the interface minimal so a harness can plug
// in whatever structured logger it already runs.
package logging
