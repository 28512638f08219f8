package store

import (
	"context"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
)

// MemoryLikeCountCache is the in-process counter cache used when no Redis is configured.
type MemoryLikeCountCache struct {
	c cache.Cache[string, int]
}

// NewMemoryLikeCountCache holds at most maxKeys counters, each for ttl.
func NewMemoryLikeCountCache(ttl time.Duration, maxKeys int) *MemoryLikeCountCache {
	return &MemoryLikeCountCache{
		c: cache.NewCache[string, int]().WithTTL(ttl).WithMaxKeys(maxKeys).WithLRU(),
	}
}

var _ contract.ILikeCountCache = (*MemoryLikeCountCache)(nil)

func (m *MemoryLikeCountCache) GetLikeCount(_ context.Context, postID string) (int, bool, error) {
	n, ok := m.c.Get(postID)
	return n, ok, nil
}

func (m *MemoryLikeCountCache) SetLikeCount(_ context.Context, postID string, count int) error {
	m.c.Set(postID, count, 0)
	return nil
}

func (m *MemoryLikeCountCache) InvalidateLikeCount(_ context.Context, postID string) error {
	m.c.Invalidate(postID)
	return nil
}
