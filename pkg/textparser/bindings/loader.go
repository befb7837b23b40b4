package bindings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/randalmurphal/textparser/pkg/textparser"
	"gopkg.in/yaml.v3"
)

// FromFile loads bindings from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json, .env
func FromFile(path string) (textparser.Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bindings file: %w", err)
	}

	var b textparser.Bindings
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		b, err = FromYAML(data)
	case ".json":
		b, err = FromJSON(data)
	case ".env":
		b, err = FromDotenv(data)
	default:
		return nil, fmt.Errorf("unsupported bindings file extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadFiles loads and merges several binding files. Later files win.
func LoadFiles(paths ...string) (textparser.Bindings, error) {
	out := make(textparser.Bindings)
	for _, path := range paths {
		b, err := FromFile(path)
		if err != nil {
			return nil, err
		}
		out = out.Merge(b)
	}
	return out, nil
}

// FromYAML parses a YAML mapping into bindings.
func FromYAML(data []byte) (textparser.Bindings, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return flatten(m)
}

// FromJSON parses a JSON object into bindings. Numbers keep their
// literal form.
func FromJSON(data []byte) (textparser.Bindings, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return flatten(m)
}

// FromDotenv parses KEY=value lines in dotenv format.
func FromDotenv(data []byte) (textparser.Bindings, error) {
	m, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse dotenv: %w", err)
	}
	return textparser.Bindings(m), nil
}

// flatten converts decoded documents into bindings. Nested maps become
// dotted names; null becomes the empty string.
func flatten(m map[string]any) (textparser.Bindings, error) {
	out := make(textparser.Bindings, len(m))
	if err := flattenInto(out, "", m); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out textparser.Bindings, prefix string, m map[string]any) error {
	// Sorted for deterministic error reporting
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		switch v := m[k].(type) {
		case nil:
			out.Set(name, "")
		case string:
			out.Set(name, v)
		case map[string]any:
			if err := flattenInto(out, name, v); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("binding %q: lists are not supported", name)
		default:
			out.Set(name, fmt.Sprint(v))
		}
	}
	return nil
}
