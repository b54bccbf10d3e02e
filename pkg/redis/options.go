package redis

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/runelookup/pkg/logger"
)

// Option configures a Redis connection.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
	timeout       time.Duration
}

func defaultOptions() *options {
	return &options{
		logger:        logger.NewNope(),
		poolSize:      4,
		retryAttempts: 3,
		retryInterval: time.Second,
		timeout:       2 * time.Second,
	}
}

// WithPoolSize sets the maximum number of connections in the pool.
// Lookups are short and mostly served from memory, so a small pool suffices.
// Default: 4
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithRetry configures connection retry behavior.
// The wait before attempt i+1 is i*interval.
// Default: 3 attempts, 1 second base interval.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithTimeout sets the dial, read and write timeouts.
// Default: 2 seconds
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the logger used to report failed connection attempts.
// Default: no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
