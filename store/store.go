package store

import (
	"context"
	"sync"
)

// KeyServerURL is the key under which the current server URL is persisted
const KeyServerURL = "mcp_server_url"

// KeyValueStore is a pluggable persistence layer for small string values
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore() KeyValueStore {
	return &memoryStore{values: map[string]string{}}
}
