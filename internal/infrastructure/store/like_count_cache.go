package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
)

// LikeCountCacheStore keeps post like counters in Redis with a fixed TTL.
type LikeCountCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLikeCountCacheStore(rdb *redis.Client, ttl time.Duration) *LikeCountCacheStore {
	return &LikeCountCacheStore{rdb: rdb, ttl: ttl}
}

var _ contract.ILikeCountCache = (*LikeCountCacheStore)(nil)

func likeCountKey(postID string) string { return fmt.Sprintf("post:%s:likes_count", postID) }

func (c *LikeCountCacheStore) GetLikeCount(ctx context.Context, postID string) (int, bool, error) {
	n, err := c.rdb.Get(ctx, likeCountKey(postID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return n, true, nil
}

func (c *LikeCountCacheStore) SetLikeCount(ctx context.Context, postID string, count int) error {
	return c.rdb.Set(ctx, likeCountKey(postID), count, c.ttl).Err()
}

func (c *LikeCountCacheStore) InvalidateLikeCount(ctx context.Context, postID string) error {
	return c.rdb.Del(ctx, likeCountKey(postID)).Err()
}
