// ABOUTME: In-memory Store for tests and ephemeral sessions.
// ABOUTME: Nothing survives Close.
package storage

import "sync"

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

// Get retrieves a blob by key.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores a blob.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
