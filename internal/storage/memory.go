package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore keeps encoded values in process memory. Nothing survives a restart.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (m *memoryStore) Get(ctx context.Context, key string, value any) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	m.mu.RLock()
	data, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrInvalidKey
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	m.mu.Lock()
	m.data[key] = data
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
