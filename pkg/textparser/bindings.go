package textparser

// Bindings maps placeholder names to substitution values. Names are
// case-sensitive.
//
// Bindings is a plain map and is not synchronized: it must not be
// mutated while a scan that reads it is running. A nil Bindings is
// treated as missing input by the scanner; use Bindings{} for an empty
// table.
type Bindings map[string]string

// Set binds name to value, replacing any previous binding.
// Set on a nil Bindings panics, like any nil map write.
func (b Bindings) Set(name, value string) {
	b[name] = value
}

// Lookup returns the value bound to name.
func (b Bindings) Lookup(name string) (string, bool) {
	v, ok := b[name]
	return v, ok
}

// Merge returns a new Bindings holding b overlaid with other.
// Entries in other win.
func (b Bindings) Merge(other Bindings) Bindings {
	out := make(Bindings, len(b)+len(other))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
