package textparser

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strings"

	"github.com/randalmurphal/textparser/pkg/textparser/observability"
)

// sentinel is appended to the working copy of every input so that each
// scan position has at least one byte of look-ahead. It is never part of
// a marker match and is stripped from the output.
const sentinel = "\n"

// Parser substitutes placeholders bounded by one pair of Delimiters.
//
// Create with NewParser() and configure with Option functions.
// Parser holds no per-scan state and is safe for concurrent use.
type Parser struct {
	delims      *Delimiters
	strict      bool
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	concurrency int
}

// NewParser creates a Parser for d with the given options.
//
// Default configuration:
//   - StrictSyntax: disabled
//   - Logger: none
//   - Metrics and tracing: no-op
//
// A nil d is accepted here and reported as ErrInvalidInput by every scan.
func NewParser(d *Delimiters, opts ...Option) *Parser {
	p := &Parser{
		delims:      d,
		metrics:     observability.NoopMetrics{},
		spans:       observability.NoopSpanManager{},
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Delimiters returns the parser's marker pair.
func (p *Parser) Delimiters() *Delimiters { return p.delims }

// Strict reports whether strict syntax checking is enabled.
func (p *Parser) Strict() bool { return p.strict }

// Parse substitutes every placeholder in text with its value from b.
//
// The scan is a single left-to-right pass. Any failure aborts the whole
// scan; no partial output is returned. ctx carries tracing only, a scan
// is not cancellable.
//
// Example:
//
//	d, _ := textparser.NewDelimiters("*(", ")*")
//	out, err := textparser.NewParser(d).Parse(ctx, "Hi *(name)*", textparser.Bindings{"name": "Ann"})
//	// out: "Hi Ann"
func (p *Parser) Parse(ctx context.Context, text string, b Bindings) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.validate(b); err != nil {
		return "", err
	}
	return p.parse(ctx, text, b, p.logger)
}

// validate rejects missing inputs before any instrumentation runs.
func (p *Parser) validate(b Bindings) error {
	if p.delims == nil {
		return newError(KindInvalidInput, -1, "delimiters are required")
	}
	if b == nil {
		return newError(KindInvalidInput, -1, "bindings are required")
	}
	return nil
}

// parse runs one instrumented scan, logging to logger.
func (p *Parser) parse(ctx context.Context, text string, b Bindings, logger *slog.Logger) (string, error) {
	ctx, span := p.spans.StartScanSpan(ctx, p.delims.String(), len(text), p.strict)
	observability.LogScanStart(logger, p.delims.String(), len(text), p.strict)
	elapsed := observability.TimedOperation()

	out, count, err := p.scan(text, b)

	d := elapsed()
	p.metrics.RecordScan(ctx, count, d, kindLabel(err))
	p.spans.EndSpanWithError(span, err)
	if err != nil {
		return "", err
	}
	observability.LogScanComplete(logger, count, d)
	return out, nil
}

// scan runs the substitution loop over text plus sentinel and reports the
// output and the number of placeholders substituted.
//
// A start marker is only recognized when it ends strictly before the end
// of the working copy, i.e. never overlapping the sentinel.
func (p *Parser) scan(text string, b Bindings) (string, int, error) {
	start := p.delims.start
	buf := text + sentinel
	n := len(buf)

	var out strings.Builder
	out.Grow(n)
	count := 0

	for i := 0; i < n; {
		if i+len(start) < n && buf[i:i+len(start)] == start {
			body, next, err := p.closePlaceholder(buf, i)
			if err != nil {
				return "", 0, err
			}
			id, err := ParseIdentifier(body)
			if err != nil {
				return "", 0, withPos(err, i)
			}
			val, err := id.Resolve(b)
			if err != nil {
				return "", 0, withPos(err, i)
			}
			out.WriteString(val)
			count++
			i = next
			continue
		}
		out.WriteByte(buf[i])
		i++
	}

	s := out.String()
	return s[:len(s)-len(sentinel)], count, nil
}

// closePlaceholder finds the end marker of the placeholder whose start
// marker is at i. It returns the body between the markers and the index
// just past the end marker.
func (p *Parser) closePlaceholder(buf string, i int) (string, int, error) {
	start, end := p.delims.start, p.delims.end
	n := len(buf)

	for j := i + len(start); ; j++ {
		if j+len(end) >= n {
			return "", 0, newError(KindUnterminatedPlaceholder, i, "no end marker %q for start marker %q", end, start)
		}
		// End is tested first so overlapping or identical markers still close in strict mode.
		if buf[j:j+len(end)] == end {
			return buf[i+len(start) : j], j + len(end), nil
		}
		if p.strict && j+len(start) < n && buf[j:j+len(start)] == start {
			return "", 0, newError(KindSyntax, j, "found nested start marker before end marker")
		}
	}
}

// withPos records pos on a ParseError that has no position yet.
func withPos(err error, pos int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Pos < 0 {
		pe.Pos = pos
	}
	return err
}

func kindLabel(err error) string {
	if err == nil {
		return ""
	}
	return KindOf(err).String()
}

// Scan substitutes placeholders in text, blocking until done.
//
// It fails with ErrInvalidInput when d or b is nil. Options configure the
// one-off Parser used for the call; pass WithStrictSyntax(true) to enable
// strict checking.
//
// Example:
//
//	d, _ := textparser.NewDelimiters("*(", ")*")
//	out, err := textparser.Scan(`Hi *(?name defVal="Bob")*`, d, textparser.Bindings{})
//	// out: "Hi Bob"
func Scan(text string, d *Delimiters, b Bindings, opts ...Option) (string, error) {
	return NewParser(d, opts...).Parse(context.Background(), text, b)
}
