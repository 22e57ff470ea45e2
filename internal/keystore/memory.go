package keystore

import (
	"context"
	"sync"
)

// memoryKeyStore is a map-backed [SecureKeyStore]. Secrets held in it do not
// survive a process restart, which makes it suitable for tests and for
// ephemeral sessions where the host application has no durable store.
type memoryKeyStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryKeyStore constructs an empty in-memory [SecureKeyStore]. The
// store is safe for concurrent use.
func NewMemoryKeyStore() SecureKeyStore {
	return &memoryKeyStore{entries: make(map[string]string)}
}

func (m *memoryKeyStore) Get(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[name]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKeyStore) Set(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[name] = value
	return nil
}

func (m *memoryKeyStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, name)
	return nil
}
