package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runelookup/pkg/cache"
)

// brokenStore fails every operation.
type brokenStore[V any] struct{}

var errBroken = errors.New("store unavailable")

func (brokenStore[V]) Get(context.Context, string) (V, error) {
	var zero V
	return zero, errBroken
}

func (brokenStore[V]) Set(context.Context, string, V) error { return errBroken }
func (brokenStore[V]) Len(context.Context) (int, error)     { return 0, errBroken }
func (brokenStore[V]) Close() error                         { return nil }

func TestMemo_GetOrCompute(t *testing.T) {
	t.Parallel()

	t.Run("returns stored value on hit", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory[string]()
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "key", "cached"))

		memo := cache.NewMemo[string](store)
		defer memo.Close()

		val, err := memo.GetOrCompute(ctx, "key", func(context.Context) (string, error) {
			t.Fatal("fn should not be called on hit")
			return "", nil
		})
		require.NoError(t, err)
		require.Equal(t, "cached", val)
		require.Equal(t, cache.Stats{Hits: 1}, memo.Stats())
	})

	t.Run("computes once and stores result", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[string](nil)
		defer memo.Close()

		ctx := context.Background()
		var calls atomic.Int64
		fn := func(context.Context) (string, error) {
			calls.Add(1)
			return "computed", nil
		}

		for range 3 {
			val, err := memo.GetOrCompute(ctx, "key", fn)
			require.NoError(t, err)
			require.Equal(t, "computed", val)
		}

		require.Equal(t, int64(1), calls.Load())
		require.Equal(t, cache.Stats{Hits: 2, Misses: 1}, memo.Stats())

		stored, err := memo.Store().Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "computed", stored)
	})

	t.Run("does not store errors", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[int](nil)
		defer memo.Close()

		ctx := context.Background()
		errCompute := errors.New("compute failed")

		_, err := memo.GetOrCompute(ctx, "key", func(context.Context) (int, error) {
			return 0, errCompute
		})
		require.ErrorIs(t, err, errCompute)

		n, err := memo.Store().Len(ctx)
		require.NoError(t, err)
		require.Zero(t, n)

		val, err := memo.GetOrCompute(ctx, "key", func(context.Context) (int, error) {
			return 7, nil
		})
		require.NoError(t, err)
		require.Equal(t, 7, val)
	})

	t.Run("degrades to recomputation when store fails", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[int](brokenStore[int]{})

		var calls atomic.Int64
		for range 2 {
			val, err := memo.GetOrCompute(context.Background(), "key", func(context.Context) (int, error) {
				calls.Add(1)
				return 1, nil
			})
			require.NoError(t, err)
			require.Equal(t, 1, val)
		}
		require.Equal(t, int64(2), calls.Load())
	})

	t.Run("deduplicates concurrent misses", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[int](nil)
		defer memo.Close()

		ctx := context.Background()
		var calls atomic.Int64
		var wg sync.WaitGroup

		for range 10 {
			wg.Go(func() {
				val, err := memo.GetOrCompute(ctx, "dedup", func(context.Context) (int, error) {
					calls.Add(1)
					time.Sleep(10 * time.Millisecond)
					return 42, nil
				})
				require.NoError(t, err)
				require.Equal(t, 42, val)
			})
		}

		wg.Wait()

		require.Equal(t, int64(1), calls.Load())
	})
}
