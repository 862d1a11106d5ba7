package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SearchOutcome is the telemetry view of one constrained search.
type SearchOutcome struct {
	Profile string
	Found   bool
	Cost    int64
	Settled int
	Pushed  int
	Stale   int
}

// MetricsRecorder records crucible metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSearch records one profile's search with its duration.
	RecordSearch(ctx context.Context, o SearchOutcome, duration time.Duration)

	// RecordEvaluation records an evaluation completion.
	RecordEvaluation(ctx context.Context, success bool, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	searches      metric.Int64Counter
	unreachable   metric.Int64Counter
	settled       metric.Int64Counter
	stale         metric.Int64Counter
	pathCost      metric.Int64Histogram
	searchLatency metric.Float64Histogram
	evaluations   metric.Int64Counter
	evalLatency   metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance from the global meter provider.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("crucible")

	searches, err := meter.Int64Counter("crucible.search.runs",
		metric.WithDescription("Number of constrained searches"),
	)
	if err != nil {
		return nil, err
	}

	unreachable, err := meter.Int64Counter("crucible.search.unreachable",
		metric.WithDescription("Number of searches whose goal was unreachable"),
	)
	if err != nil {
		return nil, err
	}

	settled, err := meter.Int64Counter("crucible.search.states_settled",
		metric.WithDescription("Number of search states finalized"),
	)
	if err != nil {
		return nil, err
	}

	stale, err := meter.Int64Counter("crucible.search.stale_entries",
		metric.WithDescription("Number of frontier entries discarded as stale"),
	)
	if err != nil {
		return nil, err
	}

	pathCost, err := meter.Int64Histogram("crucible.search.path_cost",
		metric.WithDescription("Total entry cost of the accepted path"),
	)
	if err != nil {
		return nil, err
	}

	searchLatency, err := meter.Float64Histogram("crucible.search.latency_ms",
		metric.WithDescription("Search latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	evaluations, err := meter.Int64Counter("crucible.evaluation.runs",
		metric.WithDescription("Number of evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("crucible.evaluation.latency_ms",
		metric.WithDescription("Evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		searches:      searches,
		unreachable:   unreachable,
		settled:       settled,
		stale:         stale,
		pathCost:      pathCost,
		searchLatency: searchLatency,
		evaluations:   evaluations,
		evalLatency:   evalLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSearch records one search.
func (m *otelMetrics) RecordSearch(ctx context.Context, o SearchOutcome, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("profile", o.Profile))

	m.searches.Add(ctx, 1, attrs)
	m.settled.Add(ctx, int64(o.Settled), attrs)
	m.stale.Add(ctx, int64(o.Stale), attrs)
	m.searchLatency.Record(ctx, Milliseconds(duration), attrs)

	if !o.Found {
		m.unreachable.Add(ctx, 1, attrs)
		return
	}
	m.pathCost.Record(ctx, o.Cost, attrs)
}

// RecordEvaluation records an evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, success bool, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	m.evaluations.Add(ctx, 1, attrs)
	m.evalLatency.Record(ctx, Milliseconds(duration), attrs)
}
