package store

import (
	"context"
	"sync"
)

// Persister reads and writes the whole store as one blob under a fixed
// storage key. Load returns nil, nil when nothing has been stored yet.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}

// MemoryPersister keeps the last saved blob in memory.
type MemoryPersister struct {
	mu    sync.Mutex
	blob  []byte
	saves int
}

func NewMemoryPersister(initial []byte) *MemoryPersister {
	return &MemoryPersister{blob: initial}
}

func (m *MemoryPersister) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.blob...), nil
}

func (m *MemoryPersister) Save(_ context.Context, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *MemoryPersister) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
