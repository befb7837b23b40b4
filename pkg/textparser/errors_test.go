package textparser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindInvalidInput, "invalid_input"},
		{KindSyntax, "syntax"},
		{KindUnterminatedPlaceholder, "unterminated_placeholder"},
		{KindMissingDefaultValue, "missing_default_value"},
		{KindUnboundVariable, "unbound_variable"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestParseError_Error(t *testing.T) {
	t.Run("with position", func(t *testing.T) {
		err := &ParseError{Kind: KindUnboundVariable, Pos: 3, Name: "name", Msg: `no value bound for "name"`}
		assert.Equal(t, `unbound variable at offset 3: no value bound for "name"`, err.Error())
	})

	t.Run("without position", func(t *testing.T) {
		err := &ParseError{Kind: KindConfig, Pos: -1, Msg: "bad"}
		assert.Equal(t, "invalid delimiter configuration: bad", err.Error())
	})

	t.Run("unknown kind", func(t *testing.T) {
		err := &ParseError{Pos: -1, Msg: "odd"}
		assert.Equal(t, "parse error: odd", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}

func TestKindOf(t *testing.T) {
	pe := &ParseError{Kind: KindSyntax, Pos: 0}

	assert.Equal(t, KindSyntax, KindOf(pe))
	assert.Equal(t, KindSyntax, KindOf(fmt.Errorf("wrapped: %w", pe)))
	assert.Equal(t, KindUnterminatedPlaceholder, KindOf(fmt.Errorf("bare sentinel: %w", ErrUnterminatedPlaceholder)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestParseError_IsOnlyItsOwnSentinel(t *testing.T) {
	err := error(&ParseError{Kind: KindMissingDefaultValue, Pos: -1})
	assert.ErrorIs(t, err, ErrMissingDefaultValue)
	for _, other := range []error{ErrConfig, ErrInvalidInput, ErrSyntax, ErrUnterminatedPlaceholder, ErrUnboundVariable} {
		assert.NotErrorIs(t, err, other)
	}
}
