package contract

import (
	"context"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// ILikeRepository opens sessions on the reaction store.
type ILikeRepository interface {
	Session(ctx context.Context) (ILikeSession, error)
}

// ILikeSession defines reaction persistence. Uniqueness of (postID, petID) is
// enforced by the store; a violation surfaces as ErrDuplicateLike.
type ILikeSession interface {
	Session
	GetLikeByPostAndPet(ctx context.Context, postID, petID string) (*entity.Like, error)
	ListLikesByPost(ctx context.Context, postID string) ([]*entity.Like, error)
	CountLikesByPost(ctx context.Context, postID string) (int64, error)
	// StageLike prepares the insert without making it durable.
	StageLike(ctx context.Context, like *entity.Like) (StagedLike, error)
	// DeleteLike returns ErrNotFound when nothing was deleted.
	DeleteLike(ctx context.Context, postID, petID string) error
}

// StagedLike is a pending like insert. Exactly one of Commit or Abort is called.
type StagedLike interface {
	Commit(ctx context.Context) error
	Abort(ctx context.Context) error
}
