package state

import (
	"context"
	"sync"
)

// MemoryStore is the transient analogue of SQLiteStore. Its contents live for
// the process lifetime only, which is exactly what the reset flow needs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (r *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	r.values[key] = v
	return nil
}

func (r *MemoryStore) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *MemoryStore) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = make(map[string][]byte)
	return nil
}

var _ Store = (*MemoryStore)(nil)
