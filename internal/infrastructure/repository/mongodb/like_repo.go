package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// LikeRepository represents the MongoDB implementation of the reaction store.
type LikeRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewLikeRepository creates and returns a new LikeRepository instance.
func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{db: db, collection: db.Collection("likes")}
}

var _ contract.ILikeRepository = (*LikeRepository)(nil)

// EnsureIndexes creates the unique (post_id, pet_id) index the protocol relies
// on to reject concurrent duplicate likes.
func (r *LikeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "pet_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_post_pet"),
		},
		{
			Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("post_created_at"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create like indexes: %w", err)
	}
	return nil
}

func (r *LikeRepository) Session(ctx context.Context) (contract.ILikeSession, error) {
	s, err := startSession(r.db)
	if err != nil {
		return nil, err
	}
	return &likeSession{session: s, collection: r.collection}, nil
}

type likeSession struct {
	session
	collection *mongo.Collection
}

// GetLikeByPostAndPet retrieves the like a pet gave to a post.
func (s *likeSession) GetLikeByPostAndPet(ctx context.Context, postID, petID string) (*entity.Like, error) {
	var like entity.Like
	err := s.collection.FindOne(s.bind(ctx), bson.M{"post_id": postID, "pet_id": petID}).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve like: %w", err)
	}
	return &like, nil
}

// ListLikesByPost returns every like of a post, oldest first.
func (s *likeSession) ListLikesByPost(ctx context.Context, postID string) ([]*entity.Like, error) {
	sctx := s.bind(ctx)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.collection.Find(sctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer cursor.Close(sctx)

	likes := []*entity.Like{}
	if err := cursor.All(sctx, &likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes: %w", err)
	}
	return likes, nil
}

// CountLikesByPost counts the like documents of a post.
func (s *likeSession) CountLikesByPost(ctx context.Context, postID string) (int64, error) {
	count, err := s.collection.CountDocuments(s.bind(ctx), bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// StageLike defers the insert to Commit; nothing is written until then.
func (s *likeSession) StageLike(ctx context.Context, like *entity.Like) (contract.StagedLike, error) {
	return &stagedInsert{session: s.session, collection: s.collection, like: like}, nil
}

// DeleteLike removes the like a pet gave to a post.
func (s *likeSession) DeleteLike(ctx context.Context, postID, petID string) error {
	res, err := s.collection.DeleteOne(s.bind(ctx), bson.M{"post_id": postID, "pet_id": petID})
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

type stagedInsert struct {
	session    session
	collection *mongo.Collection
	like       *entity.Like
	done       bool
}

func (st *stagedInsert) Commit(ctx context.Context) error {
	if st.done {
		return errors.New("staged like already settled")
	}
	st.done = true
	if _, err := st.collection.InsertOne(st.session.bind(ctx), st.like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrDuplicateLike
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (st *stagedInsert) Abort(ctx context.Context) error {
	st.done = true
	return nil
}
