// Package session holds the client-side snapshots that outlive a single
// screen: the customer profile and the admin bearer token. The store is the
// boundary to the device key-value storage; everything behind it is
// replaceable and nothing else in the app keeps global mutable state.
package session

import (
	"context"
	"errors"
	"sync"

	"cleanbook/config"
)

// ErrNotFound is returned when a key has never been set or was invalidated.
var ErrNotFound = errors.New("session: key not found")

// Store is a minimal key-value surface over the device storage.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// NewStore picks the configured backend: in-process memory for normal app
// use, redis for kiosk or shared-terminal deployments.
func NewStore() Store {
	if config.AppConfig.SessionBackend == "redis" {
		return NewRedisStore()
	}
	return NewMemoryStore()
}

// MemoryStore keeps session data for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
