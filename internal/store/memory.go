package store

import (
	"context"
	"sync"
)

// Memory is a map-backed Store. Sessions vanish with the process; the
// engine keeps working, it just does not survive a restart. Also the
// stand-in for tests.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sessions: make(map[string][]byte)}
}

// Load returns the payload stored under key.
func (m *Memory) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.sessions[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// Save replaces the payload stored under key.
func (m *Memory) Save(ctx context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.sessions[key] = stored
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
