package textparser

import (
	"log/slog"

	"github.com/randalmurphal/textparser/pkg/textparser/observability"
)

// Option configures a Parser.
type Option func(*Parser)

// WithStrictSyntax enables or disables strict syntax checking.
//
// Default: false (disabled)
//
// In strict mode a start marker found while searching for the current
// placeholder's end marker fails the scan with ErrSyntax. This costs one
// extra marker comparison per inner position.
//
// Example:
//
//	_, err := textparser.Scan("*(a *(b)*", d, b, textparser.WithStrictSyntax(true))
//	// errors.Is(err, textparser.ErrSyntax) == true
func WithStrictSyntax(enabled bool) Option {
	return func(p *Parser) {
		p.strict = enabled
	}
}

// WithLogger sets the logger used for scan and task lifecycle records.
//
// Default: nil (no logging). Scan failures are never logged by the parser;
// they are returned to the caller.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
//
// Example:
//
//	p := textparser.NewParser(d, textparser.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(p *Parser) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithSpanManager sets the tracing span manager.
//
// Default: observability.NoopSpanManager{}
func WithSpanManager(sm observability.SpanManager) Option {
	return func(p *Parser) {
		if sm != nil {
			p.spans = sm
		}
	}
}

// WithConcurrency bounds how many texts ParseAll scans at once.
//
// Default: runtime.GOMAXPROCS(0). Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.concurrency = n
		}
	}
}
