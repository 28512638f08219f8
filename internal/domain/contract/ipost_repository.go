package contract

import (
	"context"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// IPostRepository opens sessions on the post store.
type IPostRepository interface {
	Session(ctx context.Context) (IPostSession, error)
}

// ILikeCounter maintains the like counter of a post. Every method is a single
// atomic statement committed on its own.
type ILikeCounter interface {
	IncrementLikeCount(ctx context.Context, postID string) error
	// DecrementLikeCount never takes the counter below zero.
	DecrementLikeCount(ctx context.Context, postID string) error
	SetLikeCount(ctx context.Context, postID string, count int) error
}

// IPostSession reads posts and maintains their like counter.
type IPostSession interface {
	Session
	ILikeCounter
	GetPostByID(ctx context.Context, postID string) (*entity.Post, error)
	ListPostIDs(ctx context.Context) ([]string, error)
}
