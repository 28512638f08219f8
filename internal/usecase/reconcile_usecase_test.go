package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/store"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

func TestReconcileLikeCount_RepairsDrift(t *testing.T) {
	h := newHarness(t, usecasecontract.NotificationPolicyGating)
	ctx := context.Background()
	cache := store.NewMemoryLikeCountCache(time.Hour, 100)
	h.uc.SetLikeCountCache(cache)

	// like committed, counter increment lost
	require.NoError(t, h.likes.Insert(entity.Like{ID: "like-1", PostID: postP, PetID: petA}))
	n, err := h.uc.GetLikeCount(ctx, postP)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	got, err := h.uc.ReconcileLikeCount(ctx, postP)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, h.counter(t))

	n, err = h.uc.GetLikeCount(ctx, postP)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "reconcile invalidates the cached counter")
}

func TestReconcileLikeCount_PostNotFound(t *testing.T) {
	h := newHarness(t, usecasecontract.NotificationPolicyGating)

	_, err := h.uc.ReconcileLikeCount(context.Background(), "post-ghost")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestReconcileAllLikeCounts(t *testing.T) {
	h := newHarness(t, usecasecontract.NotificationPolicyGating)
	ctx := context.Background()
	require.NoError(t, h.posts.AddPost(entity.Post{ID: "post-q", PetID: petA, LikesCount: 5}))
	require.NoError(t, h.posts.AddPost(entity.Post{ID: "post-r", PetID: petA}))
	require.NoError(t, h.uc.AddLike(ctx, "post-r", respR2, petB))

	fixed, err := h.uc.ReconcileAllLikeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	n, err := h.uc.GetLikeCount(ctx, "post-q")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	n, err = h.uc.GetLikeCount(ctx, "post-r")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
