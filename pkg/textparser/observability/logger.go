// Package observability provides structured logging, metrics and tracing
// hooks for textparser.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds task context to a logger.
// Returns a new logger with the task_id field.
//
// Example:
//
//	enriched := EnrichLogger(logger, "task-123")
//	enriched.Info("scanning") // includes task_id
func EnrichLogger(logger *slog.Logger, taskID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("task_id", taskID))
}

// LogScanStart logs the start of a scan.
func LogScanStart(logger *slog.Logger, delimiters string, textLen int, strict bool) {
	if logger == nil {
		return
	}
	logger.Debug("scan starting",
		slog.String("delimiters", delimiters),
		slog.Int("text_len", textLen),
		slog.Bool("strict", strict),
	)
}

// LogScanComplete logs a successful scan.
func LogScanComplete(logger *slog.Logger, placeholders int, elapsed time.Duration) {
	if logger == nil {
		return
	}
	logger.Debug("scan completed",
		slog.Int("placeholders", placeholders),
		slog.Float64("duration_ms", durationMs(elapsed)),
	)
}

// LogScanError logs a failed scan. The parser itself never calls this;
// failures are returned to the caller, which decides whether to log them.
func LogScanError(logger *slog.Logger, kind string, err error) {
	if logger == nil {
		return
	}
	logger.Error("scan failed",
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
}

// LogTaskDispatched logs an async scan handed to its worker.
// The logger is expected to carry the task ID (see EnrichLogger).
func LogTaskDispatched(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Debug("scan task dispatched")
}

// LogTaskFinished logs the outcome of an async scan.
// The logger is expected to carry the task ID (see EnrichLogger).
func LogTaskFinished(logger *slog.Logger, elapsed time.Duration, ok bool) {
	if logger == nil {
		return
	}
	logger.Debug("scan task finished",
		slog.Float64("duration_ms", durationMs(elapsed)),
		slog.Bool("ok", ok),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	elapsed := TimedOperation()
//	// ... do work ...
//	d := elapsed()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
