package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*LikeCountCacheStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLikeCountCacheStore(rdb, ttl), mr
}

func TestLikeCountCacheStore_MissThenHit(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	_, found, err := c.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SetLikeCount(ctx, "post-1", 3))
	n, found, err := c.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, n)

	assert.True(t, mr.Exists("post:post-1:likes_count"))
	assert.Equal(t, time.Minute, mr.TTL("post:post-1:likes_count"))
}

func TestLikeCountCacheStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	require.NoError(t, c.SetLikeCount(ctx, "post-1", 1))
	mr.FastForward(61 * time.Second)

	_, found, err := c.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLikeCountCacheStore_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newRedisCache(t, time.Minute)

	require.NoError(t, c.SetLikeCount(ctx, "post-1", 5))
	require.NoError(t, c.InvalidateLikeCount(ctx, "post-1"))

	_, found, err := c.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLikeCountCacheStore_CorruptValueIsAnError(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	require.NoError(t, mr.Set("post:post-1:likes_count", "many"))
	_, found, err := c.GetLikeCount(ctx, "post-1")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestMemoryLikeCountCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryLikeCountCache(30*time.Millisecond, 100)

	require.NoError(t, c.SetLikeCount(ctx, "post-1", 2))
	n, found, _ := c.GetLikeCount(ctx, "post-1")
	assert.True(t, found)
	assert.Equal(t, 2, n)

	time.Sleep(60 * time.Millisecond)
	_, found, _ = c.GetLikeCount(ctx, "post-1")
	assert.False(t, found, "entry must expire after the TTL")

	require.NoError(t, c.SetLikeCount(ctx, "post-2", 4))
	require.NoError(t, c.InvalidateLikeCount(ctx, "post-2"))
	_, found, _ = c.GetLikeCount(ctx, "post-2")
	assert.False(t, found)
}
