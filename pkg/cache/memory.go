package cache

import (
	"context"
	"sync"
)

// Memory is an unbounded in-memory store safe for concurrent use.
//
// There is no eviction and no expiry. It is meant for memo tables whose
// key space is bounded by the problem domain, so the worst-case size is
// known up front.
type Memory[V any] struct {
	items  map[string]V
	mu     sync.RWMutex
	closed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{items: make(map[string]V)}
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}

// Set stores a value under key.
func (m *Memory[V]) Set(_ context.Context, key string, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items[key] = value
	return nil
}

// Len reports the number of stored entries.
func (m *Memory[V]) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

// Close drops all entries and marks the store as closed.
// Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	clear(m.items)
	return nil
}

var _ Store[any] = (*Memory[any])(nil)
