package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2, time.Minute, "pos")

	key := c.GenerateKey("submit", "abc")
	assert.Equal(t, "pos:submit:abc", key)

	v, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, c.Set(ctx, key, "order-1", time.Minute))
	v, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "order-1", v)
}

func TestLRUCacheEvictsOldest(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2, time.Minute, "pos")

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))
	require.NoError(t, c.Set(ctx, "c", 3, 0))

	v, _ := c.Get(ctx, "a")
	assert.Empty(t, v)
	v, _ = c.Get(ctx, "c")
	assert.Equal(t, "3", v)
}

func TestPingSkipsNonRedis(t *testing.T) {
	assert.NoError(t, Ping(context.Background(), NewLRUCache(1, time.Second, "pos")))
}

func TestLRUCacheSetNXKeepsFirstValue(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(4, time.Minute, "pos")

	ok, err := c.SetNX(ctx, "k", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetNX(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	v, _ := c.Get(ctx, "k")
	assert.Equal(t, "first", v)

	require.NoError(t, c.Set(ctx, "k", "third", time.Minute))
	v, _ = c.Get(ctx, "k")
	assert.Equal(t, "third", v)
}

func TestLRUCacheSetNXSingleWinner(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(4, time.Minute, "pos")

	const callers = 32
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := c.SetNX(ctx, "k", i, time.Minute)
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}
