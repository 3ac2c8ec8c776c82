// Package redis implements ports.DataStorage on Redis, letting pipeline
// stages in separate processes share one keyed blackboard.
package redis

import (
	"context"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
)

// Storage implements ports.DataStorage on a Redis backend. Values round-trip
// through their tagged YAML form.
type Storage struct {
	client *backend.Client
	prefix string
}

var _ ports.DataStorage = (*Storage)(nil)

// NewStorage creates a storage around an existing client. All keys are
// namespaced under prefix.
func NewStorage(client *backend.Client, prefix string) *Storage {
	return &Storage{client: client, prefix: prefix}
}

func (s *Storage) key(k string) string { return s.prefix + "data:" + k }

// Get retrieves and decodes the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) (domain.Value, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		return domain.Value{}, domain.ErrKeyNotFound
	}
	if err != nil {
		return domain.Value{}, fmt.Errorf("redis get %q: %w", key, err)
	}
	var v domain.Value
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return domain.Value{}, fmt.Errorf("decoding value %q: %w", key, err)
	}
	return v, nil
}

// Set encodes and stores a value under key.
func (s *Storage) Set(ctx context.Context, key string, value domain.Value) error {
	raw, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value %q: %w", key, err)
	}
	if err := s.client.Set(ctx, s.key(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Has reports whether key has an entry.
func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %q: %w", key, err)
	}
	return n > 0, nil
}

// Remove deletes the entry for key.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys (without the namespace prefix).
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	prefix := s.key("")
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(prefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return keys, nil
}
