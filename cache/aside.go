package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Aside wraps a Store with the get-or-populate pattern used for
// listing reads. Store failures are never fatal: a broken backend
// degrades to querying the origin on every request.
type Aside struct {
	store Store
	ttl   time.Duration
	log   *slog.Logger
}

func NewAside(store Store, ttl time.Duration, log *slog.Logger) *Aside {
	if log == nil {
		log = slog.Default()
	}
	return &Aside{store: store, ttl: ttl, log: log}
}

// LoadFn produces the listing from the origin on a cache miss.
type LoadFn[T any] func(ctx context.Context) ([]T, error)

// GetOrLoad returns the cached listing at key, or invokes load, stores
// the result with the configured TTL and returns it. Empty cached
// values are treated as misses. Two concurrent misses may both load
// and store; the overwrite is idempotent and intentionally unlocked.
func GetOrLoad[T any](ctx context.Context, a *Aside, key string, load LoadFn[T]) ([]T, error) {
	raw, err := a.store.Get(ctx, key)
	if err == nil && raw != "" {
		var cached []T
		if uerr := jsoniter.UnmarshalFromString(raw, &cached); uerr == nil && len(cached) > 0 {
			return cached, nil
		}
	} else if err != nil && !errors.Is(err, ErrMiss) {
		a.log.Warn("cache read failed, loading from origin", "key", key, "error", err)
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, merr := jsoniter.MarshalToString(items); merr == nil {
		if serr := a.store.Set(ctx, key, raw, a.ttl); serr != nil {
			a.log.Warn("cache write failed", "key", key, "error", serr)
		}
	}
	return items, nil
}

// Invalidate clears every cached listing under tag. It runs after the
// write has committed and before the response is returned, so requests
// observed after the write never see a stale entry. A store failure is
// logged and swallowed: a backend that cannot delete cannot serve
// stale reads either.
func (a *Aside) Invalidate(ctx context.Context, tag string) {
	if err := a.store.DeleteByPrefix(ctx, TagPrefix(tag)); err != nil {
		a.log.Warn("cache invalidation failed", "tag", tag, "error", err)
	}
}
