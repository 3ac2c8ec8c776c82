// Package memory implements ports.DataStorage in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
)

// Storage implements ports.DataStorage in memory. Safe for concurrent use.
type Storage struct {
	mu   sync.RWMutex
	data map[string]domain.Value
}

var _ ports.DataStorage = (*Storage)(nil)

// NewStorage creates an empty in-memory storage.
func NewStorage() *Storage {
	return &Storage{data: make(map[string]domain.Value)}
}

// Get retrieves the value stored under key. Values are copied on read so a
// caller cannot mutate stored state through shared slices.
func (s *Storage) Get(ctx context.Context, key string) (domain.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return domain.Value{}, domain.ErrKeyNotFound
	}
	return v.Clone(), nil
}

// Set stores a value under key. The value is copied on write for the same
// isolation reason.
func (s *Storage) Set(ctx context.Context, key string, value domain.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value.Clone()
	return nil
}

// Has reports whether key has an entry.
func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok, nil
}

// Remove deletes the entry for key.
func (s *Storage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Keys lists the stored keys.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
