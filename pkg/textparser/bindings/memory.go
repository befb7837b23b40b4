package bindings

import (
	"context"
	"sort"
	"sync"

	"github.com/randalmurphal/textparser/pkg/textparser"
)

// MemoryStore is an in-memory binding store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]textparser.Bindings // set -> name -> value
	closed bool
}

// NewMemoryStore creates a new in-memory binding store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]textparser.Bindings),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, set, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.data[set] == nil {
		m.data[set] = make(textparser.Bindings)
	}
	m.data[set].Set(name, value)
	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, set, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}

	v, ok := m.data[set].Lookup(name)
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, set string) (textparser.Bindings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	// Copy so callers can't mutate stored state
	out := make(textparser.Bindings, len(m.data[set]))
	for k, v := range m.data[set] {
		out[k] = v
	}
	return out, nil
}

// Sets implements Store.
func (m *MemoryStore) Sets(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	names := make([]string, 0, len(m.data))
	for set := range m.data {
		names = append(names, set)
	}
	sort.Strings(names)
	return names, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, set, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if b, ok := m.data[set]; ok {
		delete(b, name)
		if len(b) == 0 {
			delete(m.data, set)
		}
	}
	return nil
}

// DeleteSet implements Store.
func (m *MemoryStore) DeleteSet(_ context.Context, set string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, set)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the total number of bindings across all sets.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, b := range m.data {
		count += len(b)
	}
	return count
}
