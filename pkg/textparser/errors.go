package textparser

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Every error returned by this
// package unwraps to exactly one of them.
var (
	// ErrConfig indicates an invalid delimiter pair (an empty marker).
	ErrConfig = errors.New("invalid delimiter configuration")

	// ErrInvalidInput indicates missing delimiters or bindings at scan time,
	// or a missing callback on the async entry point.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSyntax indicates a nested start marker seen before the end marker.
	// Only reported when strict syntax checking is enabled.
	ErrSyntax = errors.New("syntax error")

	// ErrUnterminatedPlaceholder indicates a start marker with no end marker
	// before the text was exhausted.
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")

	// ErrMissingDefaultValue indicates an optional identifier without a
	// well-formed defVal="..." parameter.
	ErrMissingDefaultValue = errors.New("missing default value")

	// ErrUnboundVariable indicates a mandatory identifier with no binding.
	ErrUnboundVariable = errors.New("unbound variable")
)

// Kind classifies a parse failure.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	KindConfig
	KindInvalidInput
	KindSyntax
	KindUnterminatedPlaceholder
	KindMissingDefaultValue
	KindUnboundVariable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInvalidInput:
		return "invalid_input"
	case KindSyntax:
		return "syntax"
	case KindUnterminatedPlaceholder:
		return "unterminated_placeholder"
	case KindMissingDefaultValue:
		return "missing_default_value"
	case KindUnboundVariable:
		return "unbound_variable"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindConfig:
		return ErrConfig
	case KindInvalidInput:
		return ErrInvalidInput
	case KindSyntax:
		return ErrSyntax
	case KindUnterminatedPlaceholder:
		return ErrUnterminatedPlaceholder
	case KindMissingDefaultValue:
		return ErrMissingDefaultValue
	case KindUnboundVariable:
		return ErrUnboundVariable
	default:
		return nil
	}
}

// ParseError describes why a scan, or delimiter construction, failed.
type ParseError struct {
	// Kind classifies the failure.
	Kind Kind
	// Pos is the byte offset in the input text of the placeholder's start
	// marker, or -1 when the failure is not tied to a position.
	Pos int
	// Name is the identifier name, set for unbound variables and missing defaults.
	Name string
	// Msg is a human-readable detail.
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	prefix := "parse error"
	if s := e.Kind.sentinel(); s != nil {
		prefix = s.Error()
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", prefix, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

// Unwrap returns the sentinel for the error's kind, for errors.Is support.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf reports the failure kind of err. It returns KindUnknown for nil
// and for errors not produced by this package.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	for k := KindConfig; k <= KindUnboundVariable; k++ {
		if errors.Is(err, k.sentinel()) {
			return k
		}
	}
	return KindUnknown
}

func newError(kind Kind, pos int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
