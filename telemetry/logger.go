// Package telemetry provides observability for crucible evaluations:
// structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// The search packages never log or record anything themselves; the
// evaluation facade calls into this package around each search.
package telemetry

import (
	"log/slog"
	"time"
)

// EnrichLogger adds the evaluation run ID to a logger.
func EnrichLogger(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("run_id", runID))
}

// LogEvaluationStart logs the start of an evaluation.
func LogEvaluationStart(logger *slog.Logger, height, width, profiles int) {
	if logger == nil {
		return
	}
	logger.Info("evaluation starting",
		slog.Int("height", height),
		slog.Int("width", width),
		slog.Int("profiles", profiles),
	)
}

// LogSearchResult logs the outcome of one profile's search.
func LogSearchResult(logger *slog.Logger, o SearchOutcome, durationMs float64) {
	if logger == nil {
		return
	}
	if !o.Found {
		logger.Warn("goal unreachable",
			slog.String("profile", o.Profile),
			slog.Int("settled", o.Settled),
			slog.Float64("duration_ms", durationMs),
		)
		return
	}
	logger.Debug("search completed",
		slog.String("profile", o.Profile),
		slog.Int64("cost", o.Cost),
		slog.Int("settled", o.Settled),
		slog.Int("pushed", o.Pushed),
		slog.Int("stale", o.Stale),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvaluationComplete logs a successful evaluation.
func LogEvaluationComplete(logger *slog.Logger, durationMs float64, profiles int) {
	if logger == nil {
		return
	}
	logger.Info("evaluation completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("profiles", profiles),
	)
}

// LogEvaluationError logs an evaluation failure.
func LogEvaluationError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("evaluation failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
