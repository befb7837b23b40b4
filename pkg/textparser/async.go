package textparser

import (
	"context"

	"github.com/google/uuid"

	"github.com/randalmurphal/textparser/pkg/textparser/observability"
)

// Task is the handle of one scan running on its own goroutine.
// The goroutine exits as soon as the scan finishes.
type Task struct {
	id   string
	done chan struct{}
	out  string
	err  error
}

// ID returns the task's unique identifier.
func (t *Task) ID() string { return t.id }

// Done returns a channel closed once the scan has finished and any
// completion callback has returned.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the scan finishes or ctx is done. Giving up on the
// wait does not stop the scan.
func (t *Task) Wait(ctx context.Context) (string, error) {
	select {
	case <-t.done:
		return t.out, t.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Go runs one scan of text on a new goroutine and returns its handle.
//
// Example:
//
//	task := p.Go(ctx, "Hi *(name)*", textparser.Bindings{"name": "Ann"})
//	out, err := task.Wait(ctx)
func (p *Parser) Go(ctx context.Context, text string, b Bindings) *Task {
	return p.dispatch(ctx, text, b, nil)
}

// ParseAsync runs one scan of text on a new goroutine and delivers the
// outcome to exactly one of onDone or onError, exactly once, on that
// goroutine.
//
// It fails synchronously with ErrInvalidInput, without scheduling
// anything, if either callback is nil. All other failures, including
// missing delimiters or bindings, go to onError.
func (p *Parser) ParseAsync(ctx context.Context, text string, b Bindings, onDone func(string), onError func(error)) error {
	if onDone == nil || onError == nil {
		return newError(KindInvalidInput, -1, "onDone and onError callbacks are required")
	}
	p.dispatch(ctx, text, b, func(out string, err error) {
		if err != nil {
			onError(err)
			return
		}
		onDone(out)
	})
	return nil
}

func (p *Parser) dispatch(ctx context.Context, text string, b Bindings, notify func(string, error)) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	t := &Task{
		id:   uuid.New().String(),
		done: make(chan struct{}),
	}
	logger := observability.EnrichLogger(p.logger, t.id)
	observability.LogTaskDispatched(logger)

	go func() {
		defer close(t.done)

		tctx, span := p.spans.StartTaskSpan(ctx, t.id)
		elapsed := observability.TimedOperation()
		if t.err = p.validate(b); t.err == nil {
			t.out, t.err = p.parse(tctx, text, b, logger)
		}
		d := elapsed()

		p.spans.EndSpanWithError(span, t.err)
		p.metrics.RecordTask(tctx, d, t.err == nil)
		observability.LogTaskFinished(logger, d, t.err == nil)

		if notify != nil {
			notify(t.out, t.err)
		}
	}()
	return t
}

// ScanAsync runs one scan on a separate goroutine and reports the result
// through onDone or onError. See Parser.ParseAsync.
//
// Example:
//
//	err := textparser.ScanAsync(text, d, b,
//	    func(out string) { fmt.Println(out) },
//	    func(err error) { log.Print(err) },
//	)
func ScanAsync(text string, d *Delimiters, b Bindings, onDone func(string), onError func(error), opts ...Option) error {
	return NewParser(d, opts...).ParseAsync(context.Background(), text, b, onDone, onError)
}
