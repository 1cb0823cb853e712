package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// GetOrLoadJSON caches load's result as JSON. A nil result is returned as
// (nil, nil) and not cached, so a later load can still find the value.
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if v == nil {
			return nil, errNoValue
		}
		return json.Marshal(v)
	})
	if errors.Is(err, errNoValue) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}
