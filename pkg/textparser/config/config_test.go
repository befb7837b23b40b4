package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/textparser/pkg/textparser/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies Config creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.NotNil(t, cfg.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"start": "{{"}, "start", "*(", "{{"},
		{"key missing", map[string]any{"end": "}}"}, "start", "*(", "*("},
		{"empty string", map[string]any{"start": ""}, "start", "*(", ""},
		{"wrong type int", map[string]any{"start": 123}, "start", "*(", "*("},
		{"wrong type bool", map[string]any{"start": true}, "start", "*(", "*("},
		{"nil map", nil, "start", "*(", "*("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.String(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true", map[string]any{"strict": true}, false, true},
		{"false", map[string]any{"strict": false}, true, false},
		{"missing", nil, true, true},
		{"string value", map[string]any{"strict": "true"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Bool("strict", tt.defaultVal))
		})
	}
}

// TestInt verifies integer extraction from the numeric types decoders produce.
func TestInt(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int
	}{
		{"int", 4, 4},
		{"int64", int64(8), 8},
		{"whole float64", float64(16), 16},
		{"fractional float64", 1.5, -1},
		{"string", "4", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(map[string]any{"n": tt.val})
			assert.Equal(t, tt.want, cfg.Int("n", -1))
		})
	}
}

// TestStringSlice verifies slice extraction.
func TestStringSlice(t *testing.T) {
	def := []string{"default"}
	tests := []struct {
		name string
		val  any
		want []string
	}{
		{"string slice", []string{"a.yaml", "b.env"}, []string{"a.yaml", "b.env"}},
		{"any slice", []any{"a.yaml", "b.env"}, []string{"a.yaml", "b.env"}},
		{"single string", "a.yaml", []string{"a.yaml"}},
		{"mixed any slice", []any{"a.yaml", 3}, def},
		{"int", 3, def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(map[string]any{"bindings": tt.val})
			assert.Equal(t, tt.want, cfg.StringSlice("bindings", def))
		})
	}

	t.Run("missing", func(t *testing.T) {
		assert.Nil(t, config.New(nil).StringSlice("bindings", nil))
	})
}

// TestMapAndHas verifies nested map access and key presence.
func TestMapAndHas(t *testing.T) {
	cfg := config.New(map[string]any{
		"vars":  map[string]any{"name": "Ann"},
		"other": "x",
	})

	assert.Equal(t, map[string]any{"name": "Ann"}, cfg.Map("vars"))
	assert.Nil(t, cfg.Map("other"))
	assert.Nil(t, cfg.Map("missing"))
	assert.True(t, cfg.Has("other"))
	assert.False(t, cfg.Has("missing"))
}

// TestFromYAML verifies YAML parsing.
func TestFromYAML(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`
start: "{{"
end: "}}"
strict: true
concurrency: 4
bindings:
  - a.yaml
  - b.env
`))
		require.NoError(t, err)
		assert.Equal(t, "{{", cfg.String("start", ""))
		assert.Equal(t, "}}", cfg.String("end", ""))
		assert.True(t, cfg.Bool("strict", false))
		assert.Equal(t, 4, cfg.Int("concurrency", 0))
		assert.Equal(t, []string{"a.yaml", "b.env"}, cfg.StringSlice("bindings", nil))
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Empty(t, cfg.Raw())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := config.FromYAML([]byte("start: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}

// TestFromJSON verifies JSON parsing.
func TestFromJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := config.FromJSON([]byte(`{"preset":"mustache","concurrency":2}`))
		require.NoError(t, err)
		assert.Equal(t, "mustache", cfg.String("preset", ""))
		assert.Equal(t, 2, cfg.Int("concurrency", 0))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := config.FromJSON([]byte(`{"preset":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse json")
	})
}

// TestFromFile verifies format detection by extension.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("yaml", func(t *testing.T) {
		cfg, err := config.FromFile(write("cfg.yaml", "preset: shell\n"))
		require.NoError(t, err)
		assert.Equal(t, "shell", cfg.String("preset", ""))
	})

	t.Run("yml upper case", func(t *testing.T) {
		cfg, err := config.FromFile(write("cfg.YML", "preset: erb\n"))
		require.NoError(t, err)
		assert.Equal(t, "erb", cfg.String("preset", ""))
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := config.FromFile(write("cfg.json", `{"strict":true}`))
		require.NoError(t, err)
		assert.True(t, cfg.Bool("strict", false))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.FromFile(write("cfg.toml", "strict = true"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
