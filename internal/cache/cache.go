package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is not cached.
var ErrMiss = errors.New("cache: miss")

// Cache is a small byte-value cache used for reference data that
// changes only through administrative calls. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// noop satisfies Cache without storing anything; used when no redis
// address is configured.
type noop struct{}

// NewNoop returns a Cache that never hits.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrMiss
}

func (noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (noop) Del(ctx context.Context, keys ...string) error {
	return nil
}
