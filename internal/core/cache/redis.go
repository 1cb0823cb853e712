package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache is a read-through redis cache. A nil *Cache disables caching.
type Cache struct {
	RDB    *redis.Client
	Prefix string
	sf     singleflight.Group
}

// errNoValue lets a loader report "nothing to cache" without failing the call.
var errNoValue = errors.New("cache: no value")

func New(addr, pass string, db int) *Cache {
	return &Cache{
		RDB:    redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		Prefix: "housemax:",
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.RDB.Close()
}

// GetOrLoad returns the cached bytes for key, or runs load and caches its
// result for ttl. Load errors are never cached.
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if c == nil {
		return load(ctx)
	}
	key = c.Prefix + key
	if b, err := c.RDB.Get(ctx, key).Bytes(); err == nil {
		return b, nil
	}
	// concurrent misses share one load; it must outlive any single caller
	v, err, _ := c.sf.Do(key, func() (any, error) {
		lctx := context.WithoutCancel(ctx)
		b, e := load(lctx)
		if e != nil {
			return nil, e
		}
		_ = c.RDB.Set(lctx, key, b, ttl).Err()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
