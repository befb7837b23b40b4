package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordScan does nothing.
func (NoopMetrics) RecordScan(_ context.Context, _ int, _ time.Duration, _ string) {}

// RecordTask does nothing.
func (NoopMetrics) RecordTask(_ context.Context, _ time.Duration, _ bool) {}

// NoopSpanManager is a SpanManager that does nothing.
// Use when tracing is disabled to avoid overhead.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartScanSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartScanSpan(ctx context.Context, _ string, _ int, _ bool) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// StartTaskSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartTaskSpan(ctx context.Context, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
