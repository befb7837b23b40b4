package textparser

import (
	"sort"
	"sync"
)

// Built-in preset names.
const (
	PresetStar     = "star"     // *( name )*
	PresetMustache = "mustache" // {{ name }}
	PresetShell    = "shell"    // ${ name }
	PresetERB      = "erb"      // <%= name %>
)

// presetRegistry is a read-mostly table of named delimiter pairs.
type presetRegistry struct {
	mu      sync.RWMutex
	entries map[string]*Delimiters
}

var presets = &presetRegistry{
	entries: map[string]*Delimiters{
		PresetStar:     MustDelimiters("*(", ")*"),
		PresetMustache: MustDelimiters("{{", "}}"),
		PresetShell:    MustDelimiters("${", "}"),
		PresetERB:      MustDelimiters("<%=", "%>"),
	},
}

// LookupPreset returns the delimiters registered under name.
func LookupPreset(name string) (*Delimiters, bool) {
	presets.mu.RLock()
	defer presets.mu.RUnlock()
	d, ok := presets.entries[name]
	return d, ok
}

// RegisterPreset adds or replaces the named delimiter pair.
// It is safe for concurrent use.
func RegisterPreset(name string, d *Delimiters) error {
	if name == "" || d == nil {
		return newError(KindInvalidInput, -1, "preset name and delimiters are required")
	}
	presets.mu.Lock()
	defer presets.mu.Unlock()
	presets.entries[name] = d
	return nil
}

// PresetNames returns the registered preset names, sorted.
func PresetNames() []string {
	presets.mu.RLock()
	defer presets.mu.RUnlock()
	names := make([]string, 0, len(presets.entries))
	for name := range presets.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
