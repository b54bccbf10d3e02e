package cache

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Stats is a snapshot of memo activity.
type Stats struct {
	Hits   uint64 // lookups served from the store
	Misses uint64 // computations actually run
}

// Memo wraps a Store with get-or-compute semantics.
//
// Concurrent misses for the same key are collapsed with singleflight, so
// the compute function runs once per key even under contention.
// Errors returned by the compute function are never stored.
type Memo[V any] struct {
	store  Store[V]
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemo creates a memo on top of store.
// A nil store falls back to an unbounded in-memory store.
func NewMemo[V any](store Store[V]) *Memo[V] {
	if store == nil {
		store = NewMemory[V]()
	}
	return &Memo[V]{store: store}
}

// GetOrCompute returns the value stored under key, or calls fn to compute
// it on a miss and stores the result.
//
// Store read failures other than ErrNotFound are treated as misses, and
// writing the computed value is best-effort: a broken backend degrades to
// recomputation instead of failing the call.
func (m *Memo[V]) GetOrCompute(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := m.store.Get(ctx, key); err == nil {
		m.hits.Add(1)
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// Another flight may have stored the value since the read above.
		if val, err := m.store.Get(ctx, key); err == nil {
			return val, nil
		}

		m.misses.Add(1)

		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		_ = m.store.Set(ctx, key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r, _ := v.(V)
	return r, nil
}

// Stats returns the hit and miss counters.
func (m *Memo[V]) Stats() Stats {
	return Stats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
	}
}

// Store returns the underlying store.
func (m *Memo[V]) Store() Store[V] {
	return m.store
}

// Close closes the underlying store.
func (m *Memo[V]) Close() error {
	return m.store.Close()
}
