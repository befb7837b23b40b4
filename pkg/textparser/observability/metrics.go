package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records textparser metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordScan records a finished scan. errKind is empty on success and
	// names the failure kind otherwise.
	RecordScan(ctx context.Context, placeholders int, duration time.Duration, errKind string)

	// RecordTask records a finished async scan task.
	RecordTask(ctx context.Context, duration time.Duration, ok bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	scans        metric.Int64Counter
	scanLatency  metric.Float64Histogram
	scanErrors   metric.Int64Counter
	placeholders metric.Int64Histogram
	tasks        metric.Int64Counter
	taskLatency  metric.Float64Histogram
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

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("textparser")

	scans, err := meter.Int64Counter("textparser.scan.count",
		metric.WithDescription("Number of scans"),
	)
	if err != nil {
		return nil, err
	}

	scanLatency, err := meter.Float64Histogram("textparser.scan.latency_ms",
		metric.WithDescription("Scan latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	scanErrors, err := meter.Int64Counter("textparser.scan.errors",
		metric.WithDescription("Number of failed scans by error kind"),
	)
	if err != nil {
		return nil, err
	}

	placeholders, err := meter.Int64Histogram("textparser.scan.placeholders",
		metric.WithDescription("Placeholders substituted per scan"),
	)
	if err != nil {
		return nil, err
	}

	tasks, err := meter.Int64Counter("textparser.task.count",
		metric.WithDescription("Number of async scan tasks"),
	)
	if err != nil {
		return nil, err
	}

	taskLatency, err := meter.Float64Histogram("textparser.task.latency_ms",
		metric.WithDescription("Async scan task latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		scans:        scans,
		scanLatency:  scanLatency,
		scanErrors:   scanErrors,
		placeholders: placeholders,
		tasks:        tasks,
		taskLatency:  taskLatency,
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

// RecordScan records a scan.
func (m *otelMetrics) RecordScan(ctx context.Context, placeholders int, duration time.Duration, errKind string) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", errKind == ""),
	}

	m.scans.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.scanLatency.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))

	if errKind != "" {
		m.scanErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", errKind)))
		return
	}
	m.placeholders.Record(ctx, int64(placeholders))
}

// RecordTask records an async task.
func (m *otelMetrics) RecordTask(ctx context.Context, duration time.Duration, ok bool) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", ok),
	}
	m.tasks.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.taskLatency.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))
}
