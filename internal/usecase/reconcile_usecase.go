package usecase

import (
	"context"
	"fmt"
)

// ReconcileLikeCount rewrites a post's counter from its like rows. It is the
// compensating step for a crash between a like commit and its counter commit.
// It returns the reconciled count.
func (u *LikeUsecase) ReconcileLikeCount(ctx context.Context, postID string) (int, error) {
	s, err := u.openSessions(ctx, false)
	if err != nil {
		return 0, err
	}
	defer s.close(ctx, u.logger)

	return u.reconcile(ctx, s, postID)
}

// ReconcileAllLikeCounts reconciles every post and reports how many counters changed.
func (u *LikeUsecase) ReconcileAllLikeCounts(ctx context.Context) (int, error) {
	s, err := u.openSessions(ctx, false)
	if err != nil {
		return 0, err
	}
	defer s.close(ctx, u.logger)

	postIDs, err := s.posts.ListPostIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list posts: %w", err)
	}
	fixed := 0
	for _, postID := range postIDs {
		if err := ctx.Err(); err != nil {
			return fixed, err
		}
		before, err := u.getPost(ctx, s.posts, postID)
		if err != nil {
			return fixed, err
		}
		after, err := u.reconcile(ctx, s, postID)
		if err != nil {
			return fixed, err
		}
		if before.LikesCount != after {
			fixed++
		}
	}
	return fixed, nil
}

func (u *LikeUsecase) reconcile(ctx context.Context, s *storeSessions, postID string) (int, error) {
	post, err := u.getPost(ctx, s.posts, postID)
	if err != nil {
		return 0, err
	}
	n, err := s.likes.CountLikesByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes for post %s: %w", postID, err)
	}
	count := int(n)
	if count == post.LikesCount {
		return count, nil
	}
	if err := s.posts.SetLikeCount(ctx, postID, count); err != nil {
		return 0, fmt.Errorf("failed to set like count for post %s: %w", postID, err)
	}
	u.logger.Infof("reconciled likes counter: post=%s from=%d to=%d", postID, post.LikesCount, count)
	if u.countCache != nil {
		if err := u.countCache.InvalidateLikeCount(ctx, postID); err != nil {
			u.logger.Warnf("cache invalidate failed: likes count post=%s err=%v", postID, err)
		}
	}
	return count, nil
}
