package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Slug string `json:"slug"`
}

func newRedisCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNilCacheLoadsThrough(t *testing.T) {
	var c *Cache
	calls := 0
	load := func(context.Context) (*item, error) {
		calls++
		return &item{Slug: "floor-lamp"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrLoadJSON(c, context.Background(), "product:floor-lamp", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, "floor-lamp", got.Slug)
	}
	assert.Equal(t, 2, calls)
	assert.NoError(t, c.Close())
}

func TestNilCacheNullResult(t *testing.T) {
	var c *Cache
	got, err := GetOrLoadJSON(c, context.Background(), "k", time.Minute, func(context.Context) (*item, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNilCachePropagatesError(t *testing.T) {
	var c *Cache
	boom := errors.New("db down")
	_, err := GetOrLoadJSON(c, context.Background(), "k", time.Minute, func(context.Context) (*item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRedisMissThenHit(t *testing.T) {
	c, mr := newRedisCache(t)
	calls := 0
	load := func(context.Context) (*item, error) {
		calls++
		return &item{Slug: "sofa"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrLoadJSON(c, context.Background(), "product:sofa", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, "sofa", got.Slug)
	}
	assert.Equal(t, 1, calls)

	stored, err := mr.Get("housemax:product:sofa")
	require.NoError(t, err)
	assert.JSONEq(t, `{"slug":"sofa"}`, stored)
	assert.Equal(t, time.Minute, mr.TTL("housemax:product:sofa"))
}

func TestRedisServesExistingValue(t *testing.T) {
	c, mr := newRedisCache(t)
	require.NoError(t, mr.Set("housemax:product:tv", `{"slug":"cached-tv"}`))

	got, err := GetOrLoadJSON(c, context.Background(), "product:tv", time.Minute, func(context.Context) (*item, error) {
		t.Fatal("load must not run on a hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cached-tv", got.Slug)
}

func TestRedisDoesNotCacheMissingValue(t *testing.T) {
	c, mr := newRedisCache(t)
	calls := 0
	var found *item
	load := func(context.Context) (*item, error) {
		calls++
		return found, nil
	}

	got, err := GetOrLoadJSON(c, context.Background(), "product:lamp", time.Minute, load)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists("housemax:product:lamp"))

	// the row appears later, e.g. after seeding
	found = &item{Slug: "lamp"}
	got, err = GetOrLoadJSON(c, context.Background(), "product:lamp", time.Minute, load)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "lamp", got.Slug)
	assert.Equal(t, 2, calls)
}

func TestRedisDoesNotCacheErrors(t *testing.T) {
	c, mr := newRedisCache(t)
	boom := errors.New("db down")
	_, err := GetOrLoadJSON(c, context.Background(), "product:x", time.Minute, func(context.Context) (*item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("housemax:product:x"))
}

func TestSharedLoadIgnoresCallerCancellation(t *testing.T) {
	c, mr := newRedisCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var loadErr atomic.Value
	b, err := c.GetOrLoad(ctx, "product:mattress", time.Minute, func(lctx context.Context) ([]byte, error) {
		if e := lctx.Err(); e != nil {
			loadErr.Store(e)
		}
		return []byte(`{"slug":"mattress"}`), nil
	})
	require.NoError(t, err)
	assert.Nil(t, loadErr.Load())
	assert.JSONEq(t, `{"slug":"mattress"}`, string(b))
	assert.True(t, mr.Exists("housemax:product:mattress"))
}
