package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis is a store backed by Redis, letting several processes share one
// memo table. Values are serialized with the configured Marshaler
// (default: JSON) and written without expiration.
type Redis[V any] struct {
	client    redis.UniversalClient
	opts      *redisOptions
	marshaler Marshaler[V]
}

// NewRedis creates a new Redis-backed store.
// The client should be obtained from pkg/redis.Open.
//
// If m is nil, JSON serialization is used.
//
// Example:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"))
//	store := cache.NewRedis[runelookup.Result](client, nil, cache.WithPrefix("runelookup"))
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	if m == nil {
		m = jsonMarshaler[V]{}
	}

	return &Redis[V]{
		client:    client,
		opts:      o,
		marshaler: m,
	}
}

// Get retrieves a value by key from Redis.
// Returns ErrNotFound if the key does not exist.
func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	data, err := r.client.Get(ctx, r.prefixedKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, err
	}

	return r.marshaler.Unmarshal(data)
}

// Set stores a value in Redis with no expiration.
func (r *Redis[V]) Set(ctx context.Context, key string, value V) error {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.prefixedKey(key), data, 0).Err()
}

// Len reports the number of entries.
// With a prefix configured, keys are counted with SCAN so other data in
// the same database is not included; without one, DBSIZE is used.
func (r *Redis[V]) Len(ctx context.Context) (int, error) {
	if r.opts.prefix == "" {
		n, err := r.client.DBSize(ctx).Result()
		return int(n), err
	}

	var (
		cursor uint64
		total  int
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.opts.prefix+":*", r.opts.scanCount).Result()
		if err != nil {
			return 0, err
		}
		total += len(keys)

		cursor = next
		if cursor == 0 {
			return total, nil
		}
	}
}

// Close is a no-op. The client lifecycle belongs to the caller.
func (r *Redis[V]) Close() error {
	return nil
}

func (r *Redis[V]) prefixedKey(key string) string {
	if r.opts.prefix == "" {
		return key
	}
	return r.opts.prefix + ":" + key
}

var _ Store[any] = (*Redis[any])(nil)
