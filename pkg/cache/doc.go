// Package cache provides memo tables: a generic Store interface with
// in-memory and Redis implementations, and a Memo that adds
// get-or-compute semantics on top of any Store.
//
// Entries never expire and are never evicted. The package targets pure
// computations whose results stay valid for the life of the process, such
// as derived facts about Unicode code points.
//
// # Interface
//
// The [Store] interface is generic over value type V:
//
//   - Get(ctx, key) (V, error) — retrieve a value
//   - Set(ctx, key, value) error — store a value
//   - Len(ctx) (int, error) — number of entries
//   - Close() error — release resources
//
// # In-Memory Store
//
// Use [NewMemory] for single-process use and tests:
//
//	store := cache.NewMemory[string]()
//	defer store.Close()
//
// # Redis Store
//
// Use [NewRedis] to share a memo table across processes.
// Requires a [github.com/redis/go-redis/v9.UniversalClient]
// from [github.com/dmitrymomot/runelookup/pkg/redis]:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"))
//	store := cache.NewRedis[Result](client, nil, cache.WithPrefix("runelookup"))
//
// Pass a custom [Marshaler] as the second argument to [NewRedis] to use
// a different serialization format. If nil, JSON is used.
//
// # Memo
//
// [Memo] deduplicates concurrent misses with singleflight so each key is
// computed once:
//
//	memo := cache.NewMemo[int](cache.NewMemory[int]())
//	v, err := memo.GetOrCompute(ctx, "answer", func(ctx context.Context) (int, error) {
//	    return 42, nil
//	})
//
// # Error Handling
//
// The package defines sentinel errors:
//
//   - [ErrNotFound] — key does not exist
//   - [ErrClosed] — write to a closed store
//   - [ErrMarshal] — value serialization failed
//   - [ErrUnmarshal] — value deserialization failed
package cache
