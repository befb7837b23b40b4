package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/randalmurphal/textparser/pkg/textparser"
)

// Config keys read by SettingsFrom.
const (
	KeyStart       = "start"
	KeyEnd         = "end"
	KeyPreset      = "preset"
	KeyStrict      = "strict"
	KeyConcurrency = "concurrency"
	KeyBindings    = "bindings"
	KeyVars        = "vars"
)

var settingsKeys = []string{KeyStart, KeyEnd, KeyPreset, KeyStrict, KeyConcurrency, KeyBindings, KeyVars}

// Settings describes how to build a Parser and where its bindings come from.
type Settings struct {
	// Start and End are explicit markers. Both must be set to take effect.
	Start string `env:"TEXTPARSE_START"`
	End   string `env:"TEXTPARSE_END"`

	// Preset names a registered delimiter pair, used when Start/End are unset.
	Preset string `env:"TEXTPARSE_PRESET"`

	// Strict enables strict syntax checking.
	Strict bool `env:"TEXTPARSE_STRICT"`

	// Concurrency bounds batch scans. Zero keeps the parser default.
	Concurrency int `env:"TEXTPARSE_CONCURRENCY"`

	// BindingFiles are binding files (.yaml, .yml, .json, .env) loaded in order.
	// In the environment they are separated by semicolons.
	BindingFiles []string `env:"TEXTPARSE_BINDINGS"`

	// Vars are inline bindings applied after BindingFiles.
	Vars map[string]string
}

// SettingsFrom extracts Settings from a Config.
//
// Recognized keys: start, end, preset, strict, concurrency, bindings
// (a path or list of paths) and vars (a map of inline bindings).
func SettingsFrom(c Config) Settings {
	s := Settings{
		Start:        c.String(KeyStart, ""),
		End:          c.String(KeyEnd, ""),
		Preset:       c.String(KeyPreset, ""),
		Strict:       c.Bool(KeyStrict, false),
		Concurrency:  c.Int(KeyConcurrency, 0),
		BindingFiles: c.StringSlice(KeyBindings, nil),
	}
	if vars := c.Map(KeyVars); vars != nil {
		s.Vars = make(map[string]string, len(vars))
		for k, v := range vars {
			s.Vars[k] = fmt.Sprintf("%v", v)
		}
	}
	return s
}

// Validate reports what SettingsFrom would silently ignore: unknown keys
// and known keys holding a value of the wrong type. Null values count as
// unset.
func Validate(c Config) error {
	raw := c.Raw()
	var problems []string
	wrongType := func(key, want string) {
		problems = append(problems, fmt.Sprintf("%q must be %s", key, want))
	}

	for key := range raw {
		if !slices.Contains(settingsKeys, key) {
			problems = append(problems, fmt.Sprintf("unknown key %q", key))
		}
	}

	set := func(key string) bool { return c.Has(key) && raw[key] != nil }
	for _, key := range []string{KeyStart, KeyEnd, KeyPreset} {
		if _, ok := raw[key].(string); set(key) && !ok {
			wrongType(key, "a string")
		}
	}
	if _, ok := raw[KeyStrict].(bool); set(KeyStrict) && !ok {
		wrongType(KeyStrict, "a boolean")
	}
	if set(KeyConcurrency) && c.Int(KeyConcurrency, -1) < 0 {
		wrongType(KeyConcurrency, "a non-negative whole number")
	}
	if set(KeyBindings) && c.StringSlice(KeyBindings, nil) == nil {
		wrongType(KeyBindings, "a path or a list of paths")
	}
	if set(KeyVars) && c.Map(KeyVars) == nil {
		wrongType(KeyVars, "a map")
	}

	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
}

// Merge returns s overlaid with o. Non-empty strings and positive
// numbers in o win, Strict is or-ed, binding files are appended and
// vars in o replace those in s.
//
// Markers and Preset are one choice: when o picks markers the preset of
// s is dropped, and when o picks only a preset the markers of s are
// dropped.
func (s Settings) Merge(o Settings) Settings {
	out := s
	switch {
	case o.Start != "" || o.End != "":
		out.Start, out.End = o.Start, o.End
		out.Preset = o.Preset
	case o.Preset != "":
		out.Start, out.End = "", ""
		out.Preset = o.Preset
	}
	out.Strict = s.Strict || o.Strict
	if o.Concurrency > 0 {
		out.Concurrency = o.Concurrency
	}
	out.BindingFiles = append(append([]string(nil), s.BindingFiles...), o.BindingFiles...)
	if len(o.Vars) > 0 {
		vars := make(map[string]string, len(s.Vars)+len(o.Vars))
		for k, v := range s.Vars {
			vars[k] = v
		}
		for k, v := range o.Vars {
			vars[k] = v
		}
		out.Vars = vars
	}
	return out
}

// Delimiters resolves the marker pair.
//
// Explicit Start/End take precedence over Preset. With neither set the
// star preset (*( and )*) is used. Setting only one of Start and End
// fails with textparser.ErrConfig.
func (s Settings) Delimiters() (*textparser.Delimiters, error) {
	if s.Start != "" || s.End != "" {
		return textparser.NewDelimiters(s.Start, s.End)
	}
	name := s.Preset
	if name == "" {
		name = textparser.PresetStar
	}
	d, ok := textparser.LookupPreset(name)
	if !ok {
		return nil, fmt.Errorf("unknown delimiter preset %q: %w", name, textparser.ErrConfig)
	}
	return d, nil
}

// ParserOptions returns the parser options implied by s.
func (s Settings) ParserOptions() []textparser.Option {
	opts := []textparser.Option{textparser.WithStrictSyntax(s.Strict)}
	if s.Concurrency > 0 {
		opts = append(opts, textparser.WithConcurrency(s.Concurrency))
	}
	return opts
}
