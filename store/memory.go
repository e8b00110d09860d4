package store

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore keeps preferences in process memory. Values are stored encoded
// so callers never share state with the store.
type memoryStore struct {
	sync.RWMutex
	values map[string][]byte
}

// NewMemoryPreferenceStore - preferences kept for the lifetime of the process
func NewMemoryPreferenceStore() PreferenceStore {
	return &memoryStore{
		values: make(map[string][]byte),
	}
}

func (m *memoryStore) Get(_ context.Context, key string, out interface{}) error {
	if key == "" {
		return ErrEmptyPreferenceKey
	}

	m.RLock()
	data, ok := m.values[key]
	m.RUnlock()

	if !ok {
		return ErrPreferenceNotFound
	}
	return json.Unmarshal(data, out)
}

func (m *memoryStore) Put(_ context.Context, key string, value interface{}) error {
	if key == "" {
		return ErrEmptyPreferenceKey
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.Lock()
	m.values[key] = data
	m.Unlock()
	return nil
}
