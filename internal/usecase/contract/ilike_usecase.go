package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// LikesInfo is the read model for a post's likes.
type LikesInfo struct {
	PostID     string
	LikesCount int
	Likes      []*entity.Like
}

// ILikeUseCase is the reaction-mutation protocol plus its read path.
type ILikeUseCase interface {
	AddLike(ctx context.Context, postID, responsibleID, petID string) error
	RemoveLike(ctx context.Context, postID, responsibleID, petID string) error
	GetLikesInfo(ctx context.Context, postID string) (*LikesInfo, error)
	GetLikeCount(ctx context.Context, postID string) (int, error)
}
