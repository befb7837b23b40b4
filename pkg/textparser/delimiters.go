package textparser

import "fmt"

// Delimiters is an immutable pair of markers bounding a placeholder,
// such as "*(" and ")*". Both markers are non-empty. A Delimiters value
// is safe to share between goroutines and scans.
type Delimiters struct {
	start string
	end   string
}

// NewDelimiters returns the marker pair start/end.
// It fails with ErrConfig if either marker is empty.
func NewDelimiters(start, end string) (*Delimiters, error) {
	if start == "" || end == "" {
		return nil, newError(KindConfig, -1, "start and end markers must be non-empty (start=%q, end=%q)", start, end)
	}
	return &Delimiters{start: start, end: end}, nil
}

// MustDelimiters is like NewDelimiters but panics on error.
// Use it for package-level delimiter values built from literals.
func MustDelimiters(start, end string) *Delimiters {
	d, err := NewDelimiters(start, end)
	if err != nil {
		panic(fmt.Sprintf("textparser: %v", err))
	}
	return d
}

// Start returns the start marker.
func (d *Delimiters) Start() string { return d.start }

// End returns the end marker.
func (d *Delimiters) End() string { return d.end }

// String renders the pair as start…end.
func (d *Delimiters) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.start + "…" + d.end
}

// Scan substitutes placeholders in text using these delimiters.
// It is shorthand for Scan(text, d, b, opts...).
func (d *Delimiters) Scan(text string, b Bindings, opts ...Option) (string, error) {
	return Scan(text, d, b, opts...)
}

// ScanAsync is shorthand for ScanAsync(text, d, b, onDone, onError, opts...).
func (d *Delimiters) ScanAsync(text string, b Bindings, onDone func(string), onError func(error), opts ...Option) error {
	return ScanAsync(text, d, b, onDone, onError, opts...)
}
