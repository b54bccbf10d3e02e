//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runelookup/pkg/cache"
	"github.com/dmitrymomot/runelookup/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T, prefix string) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
		_ = client.Close()
	})

	return client
}

func TestRedis_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		const prefix = "test-get-miss"
		s := cache.NewRedis[string](newTestRedisClient(t, prefix), nil, cache.WithPrefix(prefix))

		_, err := s.Get(context.Background(), "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored struct", func(t *testing.T) {
		t.Parallel()

		type record struct {
			Words     []string `json:"words"`
			Suggested string   `json:"suggested"`
		}

		const prefix = "test-get-hit"
		s := cache.NewRedis[record](newTestRedisClient(t, prefix), nil, cache.WithPrefix(prefix))

		ctx := context.Background()
		want := record{Words: []string{"E", "LATIN"}, Suggested: "e"}
		require.NoError(t, s.Set(ctx, "key", want))

		got, err := s.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("returns ErrUnmarshal for foreign data", func(t *testing.T) {
		t.Parallel()

		const prefix = "test-get-foreign"
		client := newTestRedisClient(t, prefix)
		s := cache.NewRedis[int](client, nil, cache.WithPrefix(prefix))

		ctx := context.Background()
		require.NoError(t, client.Set(ctx, prefix+":key", "not-json", 0).Err())

		_, err := s.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrUnmarshal)
	})
}

func TestRedis_Set(t *testing.T) {
	t.Parallel()

	t.Run("writes without expiration", func(t *testing.T) {
		t.Parallel()

		const prefix = "test-set-persist"
		client := newTestRedisClient(t, prefix)
		s := cache.NewRedis[string](client, nil, cache.WithPrefix(prefix))

		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "key", "value"))

		ttl, err := client.TTL(ctx, prefix+":key").Result()
		require.NoError(t, err)
		// go-redis reports "no expiry" as a raw -1.
		require.Equal(t, time.Duration(-1), ttl)
	})
}

func TestRedis_Len(t *testing.T) {
	t.Parallel()

	const prefix = "test-len"
	s := cache.NewRedis[int](newTestRedisClient(t, prefix), nil,
		cache.WithPrefix(prefix),
		cache.WithScanCount(2),
	)

	ctx := context.Background()
	for i, key := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.Set(ctx, key, i))
	}

	n, err := s.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestRedis_Memo(t *testing.T) {
	t.Parallel()

	const prefix = "test-memo"
	client := newTestRedisClient(t, prefix)

	ctx := context.Background()
	compute := func(context.Context) (string, error) { return "value", nil }

	first := cache.NewMemo[string](cache.NewRedis[string](client, nil, cache.WithPrefix(prefix)))
	_, err := first.GetOrCompute(ctx, "shared", compute)
	require.NoError(t, err)

	second := cache.NewMemo[string](cache.NewRedis[string](client, nil, cache.WithPrefix(prefix)))
	val, err := second.GetOrCompute(ctx, "shared", func(context.Context) (string, error) {
		t.Fatal("second memo should read the shared entry")
		return "", nil
	})
	require.NoError(t, err)
	require.Equal(t, "value", val)
	require.Equal(t, cache.Stats{Hits: 1}, second.Stats())
}
