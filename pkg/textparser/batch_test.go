package textparser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAll(t *testing.T) {
	p := NewParser(star, WithConcurrency(2))
	b := Bindings{"a": "1", "b": "2"}

	t.Run("keeps order", func(t *testing.T) {
		outs, err := p.ParseAll(context.Background(), []string{"*(a)*", "*(b)*", "plain", "*(a)**(b)*"}, b)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "plain", "12"}, outs)
	})

	t.Run("nil input", func(t *testing.T) {
		outs, err := p.ParseAll(context.Background(), nil, b)
		require.NoError(t, err)
		assert.Nil(t, outs)
	})

	t.Run("empty input", func(t *testing.T) {
		outs, err := p.ParseAll(context.Background(), []string{}, b)
		require.NoError(t, err)
		assert.Empty(t, outs)
	})

	t.Run("first error aborts", func(t *testing.T) {
		outs, err := p.ParseAll(context.Background(), []string{"*(a)*", "*(nope)*"}, b)
		assert.Nil(t, outs)
		assert.ErrorIs(t, err, ErrUnboundVariable)
		assert.Contains(t, err.Error(), "text 1")
	})
}

func TestParseMap(t *testing.T) {
	p := NewParser(star)
	b := Bindings{"env": "prod", "user": "ann"}

	out, err := p.ParseMap(context.Background(), map[string]any{
		"url":     "https://*(env)*.example.com",
		"retries": 3,
		"nested": map[string]any{
			"owner": "*(user)*",
			"flag":  true,
		},
	}, b)
	require.NoError(t, err)

	assert.Equal(t, "https://prod.example.com", out["url"])
	assert.Equal(t, 3, out["retries"])
	nested, ok := out["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ann", nested["owner"])
	assert.Equal(t, true, nested["flag"])

	t.Run("nil map", func(t *testing.T) {
		m, err := p.ParseMap(context.Background(), nil, b)
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("error names the key", func(t *testing.T) {
		_, err := p.ParseMap(context.Background(), map[string]any{"bad": "*(missing)*"}, b)
		assert.ErrorIs(t, err, ErrUnboundVariable)
		assert.Contains(t, err.Error(), `key "bad"`)
	})
}

func TestMustParse(t *testing.T) {
	p := NewParser(star)
	assert.Equal(t, "Hi Ann", p.MustParse("Hi *(name)*", Bindings{"name": "Ann"}))
	assert.Panics(t, func() { p.MustParse("Hi *(name)*", Bindings{}) })
}
