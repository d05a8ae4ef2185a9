// Package storage provides the two token-storage tiers: an in-memory
// store scoped to the process (the session tier) and a file-backed store
// that survives restarts (the durable tier).
package storage

import (
	"sync"

	"cmsadmin/internal/domain"
)

// Memory is a process-scoped key-value store. It is the session tier: its
// contents vanish when the console exits.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Ensure interfaces are met.
var _ domain.TokenStorage = (*Memory)(nil)
var _ domain.TokenStorage = (*File)(nil)

// Get returns the stored value for key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes key. Removing an absent key is not an error.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
