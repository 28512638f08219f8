package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/repository/memory"
)

func TestBootstrap_ReconcileInvalidatesRedisCounter(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://"+mr.Addr())
	t.Setenv("LOG_LEVEL", "error")
	ctx := context.Background()

	a, err := bootstrap(ctx)
	require.NoError(t, err)
	defer a.Close()

	posts, ok := a.stores.posts.(*memory.PostRepo)
	require.True(t, ok)
	likes, ok := a.stores.likes.(*memory.LikeRepo)
	require.True(t, ok)
	require.NoError(t, posts.AddPost(entity.Post{ID: "post-1", PetID: "pet-b"}))
	// drift: the like row exists but the counter never moved
	require.NoError(t, likes.Insert(entity.Like{ID: "like-1", PostID: "post-1", PetID: "pet-a", CreatedAt: time.Now()}))

	n, err := a.likes.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	require.True(t, mr.Exists("post:post-1:likes_count"), "read should populate the redis cache")

	got, err := a.likes.ReconcileLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.False(t, mr.Exists("post:post-1:likes_count"))

	n, err = a.likes.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBootstrap_InProcessCacheWithoutRedis(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	ctx := context.Background()

	a, err := bootstrap(ctx)
	require.NoError(t, err)
	defer a.Close()

	posts := a.stores.posts.(*memory.PostRepo)
	require.NoError(t, posts.AddPost(entity.Post{ID: "post-1", PetID: "pet-b", LikesCount: 2}))

	n, err := a.likes.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// the cached value survives a direct store change until reconcile
	s, err := posts.Session(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SetLikeCount(ctx, "post-1", 5))
	n, err = a.likes.GetLikeCount(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
