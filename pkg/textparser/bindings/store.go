package bindings

import (
	"context"
	"errors"

	"github.com/randalmurphal/textparser/pkg/textparser"
)

// Store persists named sets of bindings.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save binds name to value in set, overwriting any previous value.
	Save(ctx context.Context, set, name, value string) error

	// Get returns the value bound to name in set.
	// Returns ErrNotFound if the binding doesn't exist.
	Get(ctx context.Context, set, name string) (string, error)

	// Load returns every binding in set.
	// Returns empty Bindings (not error) if the set doesn't exist.
	Load(ctx context.Context, set string) (textparser.Bindings, error)

	// Sets returns the names of all non-empty sets, sorted.
	Sets(ctx context.Context) ([]string, error)

	// Delete removes one binding.
	// Returns nil if the binding doesn't exist.
	Delete(ctx context.Context, set, name string) error

	// DeleteSet removes a whole set.
	// Returns nil if the set doesn't exist.
	DeleteSet(ctx context.Context, set string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a binding doesn't exist.
	ErrNotFound = errors.New("binding not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("binding store closed")
)
