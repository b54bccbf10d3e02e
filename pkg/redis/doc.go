// Package redis opens [github.com/redis/go-redis/v9] clients for the
// shared lookup cache.
//
// [Open] validates the URL (redis:// or rediss://), applies pool and
// timeout settings and pings the server, retrying with linear backoff:
//
//	client, err := redis.Open(ctx, os.Getenv("RUNELOOKUP_REDIS_URL"),
//	    redis.WithRetry(5, time.Second),
//	    redis.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Pass the client to cache.NewRedis to share memoized lookups between
// processes.
package redis
