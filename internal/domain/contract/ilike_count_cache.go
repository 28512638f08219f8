package contract

import "context"

// ILikeCountCache is the read-through cache for post like counters.
type ILikeCountCache interface {
	// GetLikeCount reports found=false on a miss or an expired entry.
	GetLikeCount(ctx context.Context, postID string) (count int, found bool, err error)
	SetLikeCount(ctx context.Context, postID string, count int) error
	InvalidateLikeCount(ctx context.Context, postID string) error
}
