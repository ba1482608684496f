package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key holds no value.
var ErrMiss = errors.New("cache: miss")

// Store is the key-value backend the aside layer runs on. Values are
// serialized strings; expiration is handled by the backend.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
