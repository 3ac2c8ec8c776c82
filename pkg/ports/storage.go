package ports

import (
	"context"

	"github.com/reframe-systems/tesseract-planning/pkg/domain"
)

// DataStorage is the keyed blackboard through which pipeline nodes exchange
// data. Implementations must be safe for concurrent use: the scheduler may run
// sibling nodes on separate goroutines against the same storage.
type DataStorage interface {
	// Get retrieves the value stored under key.
	// Returns domain.ErrKeyNotFound if the key has no entry.
	Get(ctx context.Context, key string) (domain.Value, error)

	// Set stores a value under key, replacing any previous entry.
	Set(ctx context.Context, key string, value domain.Value) error

	// Has reports whether key has an entry.
	Has(ctx context.Context, key string) (bool, error)

	// Remove deletes the entry for key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists the stored keys in no particular order.
	Keys(ctx context.Context) ([]string, error)
}
