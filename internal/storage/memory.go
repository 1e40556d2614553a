package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps JSON payloads in memory. It is used by tests and by the
// "memory" driver, where nothing survives a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, key string, dst any) error {
	m.mu.RLock()
	payload, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return decode(key, payload, dst)
}

func (m *MemoryStore) Save(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = payload
	m.mu.Unlock()
	return nil
}

// Put stores a raw payload as-is. Tests use it to plant malformed data.
func (m *MemoryStore) Put(key string, payload []byte) {
	m.mu.Lock()
	m.data[key] = payload
	m.mu.Unlock()
}

func (m *MemoryStore) Close() error { return nil }
