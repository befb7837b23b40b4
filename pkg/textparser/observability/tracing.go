package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the textparser tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("textparser")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartScanSpan starts a span for one scan.
	StartScanSpan(ctx context.Context, delimiters string, textLen int, strict bool) (context.Context, trace.Span)

	// StartTaskSpan starts a span for an async scan task.
	// The scan span started inside the task is its child.
	StartTaskSpan(ctx context.Context, taskID string) (context.Context, trace.Span)

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

// StartScanSpan starts a span for one scan.
func (m *otelSpanManager) StartScanSpan(ctx context.Context, delimiters string, textLen int, strict bool) (context.Context, trace.Span) {
	return StartScanSpan(ctx, delimiters, textLen, strict)
}

// StartTaskSpan starts a span for an async scan task.
func (m *otelSpanManager) StartTaskSpan(ctx context.Context, taskID string) (context.Context, trace.Span) {
	return StartTaskSpan(ctx, taskID)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartScanSpan starts a span for one scan.
// Uses the global OTel tracer.
func StartScanSpan(ctx context.Context, delimiters string, textLen int, strict bool) (context.Context, trace.Span) {
	return tracer.Start(ctx, "textparser.scan",
		trace.WithAttributes(
			attribute.String("scan.delimiters", delimiters),
			attribute.Int("scan.text_len", textLen),
			attribute.Bool("scan.strict", strict),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartTaskSpan starts a span for an async scan task.
// Uses the global OTel tracer.
func StartTaskSpan(ctx context.Context, taskID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "textparser.task",
		trace.WithAttributes(
			attribute.String("task.id", taskID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
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

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
