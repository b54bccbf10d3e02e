package cache

// RedisOption configures the Redis store.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix    string
	scanCount int64
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix:    "",
		scanCount: 100,
	}
}

// WithPrefix sets a key prefix for all store operations.
// Keys are stored as "{prefix}:{key}", which keeps several memo tables
// apart when they share one Redis database.
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}

// WithScanCount sets the COUNT hint used when iterating prefixed keys.
// Default: 100.
func WithScanCount(n int64) RedisOption {
	return func(o *redisOptions) {
		if n > 0 {
			o.scanCount = n
		}
	}
}
