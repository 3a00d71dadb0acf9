package store

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory reference implementation of RowStore. It is
// used by tests and by the "memory" backend for throwaway deployments.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Record
	writeErr    error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Record)}
}

func (m *MemoryStore) ReadAll(ctx context.Context, schema Schema) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.collections[schema.Name]
	out := make([]Record, len(records))
	for i, rec := range records {
		cp := make(Record, len(rec))
		copy(cp, rec)
		out[i] = cp
	}
	return out, nil
}

func (m *MemoryStore) WriteAll(ctx context.Context, schema Schema, records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	stored := make([]Record, len(records))
	for i, rec := range records {
		cp := make(Record, len(rec))
		copy(cp, rec)
		stored[i] = cp
	}
	m.collections[schema.Name] = stored
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// FailWrites makes every subsequent WriteAll return err. Pass nil to
// restore normal behavior. Test hook for the write-phase unavailable case.
func (m *MemoryStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}
