package textparser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// optionalMarker prefixes the body of an optional placeholder.
	optionalMarker = '?'

	// defaultValueToken opens the default value of an optional placeholder.
	defaultValueToken = `defVal="`

	// escapeMarker before a quote inside a default value yields a literal quote.
	escapeMarker = '*'
)

// Identifier is the parsed body of one placeholder.
type Identifier struct {
	// Optional is true when the body started with '?'.
	Optional bool
	// Name is the binding key. For mandatory identifiers it is the whole body.
	Name string
	// Default is the parsed defVal for optional identifiers.
	Default string
	// HasDefault distinguishes an empty default (defVal="") from none.
	// It is always true for a successfully parsed optional identifier.
	HasDefault bool
}

// ParseIdentifier parses a placeholder body, the text between the start
// and end markers.
//
// A body not starting with '?' is a mandatory identifier named by the
// whole body, untrimmed. A body "?name params" is optional: name runs up
// to the first whitespace (see isNameSeparator) and params must contain
// defVal="value". Inside the value, *" is a literal quote and an
// unescaped " ends the value. Anything else in params is ignored.
func ParseIdentifier(body string) (Identifier, error) {
	if len(body) == 0 || body[0] != optionalMarker {
		return Identifier{Name: body}, nil
	}

	rest := body[1:]
	ws := strings.IndexFunc(rest, isNameSeparator)
	if ws < 0 {
		return Identifier{}, &ParseError{
			Kind: KindMissingDefaultValue,
			Pos:  -1,
			Name: rest,
			Msg:  "optional identifier " + strconv.Quote(rest) + " has no parameters",
		}
	}

	name := rest[:ws]
	_, size := utf8.DecodeRuneInString(rest[ws:])
	params := rest[ws+size:]
	if params == "" {
		return Identifier{}, &ParseError{
			Kind: KindMissingDefaultValue,
			Pos:  -1,
			Name: name,
			Msg:  "optional identifier " + strconv.Quote(name) + " has no parameters",
		}
	}

	def, ok := parseDefaultValue(params)
	if !ok {
		return Identifier{}, &ParseError{
			Kind: KindMissingDefaultValue,
			Pos:  -1,
			Name: name,
			Msg:  "optional identifier " + strconv.Quote(name) + ` needs defVal="value"`,
		}
	}

	return Identifier{Optional: true, Name: name, Default: def, HasDefault: true}, nil
}

// isNameSeparator reports whether r ends the name of an optional
// identifier. No-break spaces (U+00A0, U+2007, U+202F) and NEL (U+0085)
// stay part of the name; the information separators U+001C..U+001F end it.
func isNameSeparator(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f', '\u0085':
		return false
	case '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	}
	return unicode.IsSpace(r)
}

// parseDefaultValue extracts the value of the first defVal="..." in params.
// It reports false when the token is absent or the value is never closed.
func parseDefaultValue(params string) (string, bool) {
	at := strings.Index(params, defaultValueToken)
	if at < 0 {
		return "", false
	}

	var sb strings.Builder
	for k := at + len(defaultValueToken); k < len(params); k++ {
		c := params[k]
		switch {
		case c == escapeMarker && k+1 < len(params) && params[k+1] == '"':
			sb.WriteByte('"')
			k++
		case c == '"':
			return sb.String(), true
		default:
			sb.WriteByte(c)
		}
	}
	return "", false
}

// Resolve returns the substitution value for id.
//
// A bound value always wins. An unbound optional identifier yields its
// default; an unbound mandatory one fails with ErrUnboundVariable.
func (id Identifier) Resolve(b Bindings) (string, error) {
	if v, ok := b.Lookup(id.Name); ok {
		return v, nil
	}
	if id.Optional {
		return id.Default, nil
	}
	return "", &ParseError{
		Kind: KindUnboundVariable,
		Pos:  -1,
		Name: id.Name,
		Msg:  "no value bound for " + strconv.Quote(id.Name),
	}
}
