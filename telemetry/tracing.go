package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the crucible tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("crucible")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartEvaluationSpan starts a span covering a whole evaluation.
	StartEvaluationSpan(ctx context.Context, runID string) (context.Context, trace.Span)

	// StartSearchSpan starts a child span for one profile's search.
	StartSearchSpan(ctx context.Context, profile string, minRun, maxRun int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartEvaluationSpan starts a span for the entire evaluation.
func (m *otelSpanManager) StartEvaluationSpan(ctx context.Context, runID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "crucible.evaluate",
		trace.WithAttributes(attribute.String("run.id", runID)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartSearchSpan starts a span for one search.
func (m *otelSpanManager) StartSearchSpan(ctx context.Context, profile string, minRun, maxRun int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "crucible.search."+profile,
		trace.WithAttributes(
			attribute.String("profile", profile),
			attribute.Int("run.min", minRun),
			attribute.Int("run.max", maxRun),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
