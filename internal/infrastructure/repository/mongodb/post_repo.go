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

// PostRepository reads posts and maintains their "likes" counter.
type PostRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db, collection: db.Collection("posts")}
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func (r *PostRepository) Session(ctx context.Context) (contract.IPostSession, error) {
	s, err := startSession(r.db)
	if err != nil {
		return nil, err
	}
	return &postSession{session: s, collection: r.collection}, nil
}

type postSession struct {
	session
	collection *mongo.Collection
}

// GetPostByID retrieves a single post by its unique id.
func (s *postSession) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	var post entity.Post
	err := s.collection.FindOne(s.bind(ctx), bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &post, nil
}

// IncrementLikeCount increments the like count of a specific post.
func (s *postSession) IncrementLikeCount(ctx context.Context, postID string) error {
	res, err := s.collection.UpdateOne(s.bind(ctx), bson.M{"_id": postID}, bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment like count: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// DecrementLikeCount decrements the like count of a post, stopping at zero.
func (s *postSession) DecrementLikeCount(ctx context.Context, postID string) error {
	sctx := s.bind(ctx)
	filter := bson.M{"_id": postID, "likes": bson.M{"$gt": 0}}
	res, err := s.collection.UpdateOne(sctx, filter, bson.M{"$inc": bson.M{"likes": -1}})
	if err != nil {
		return fmt.Errorf("failed to decrement like count: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	// either already zero or missing
	n, err := s.collection.CountDocuments(sctx, bson.M{"_id": postID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("failed to check post existence: %w", err)
	}
	if n == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// SetLikeCount overwrites the counter, used by reconciliation.
func (s *postSession) SetLikeCount(ctx context.Context, postID string, count int) error {
	res, err := s.collection.UpdateOne(s.bind(ctx), bson.M{"_id": postID}, bson.M{"$set": bson.M{"likes": count}})
	if err != nil {
		return fmt.Errorf("failed to set like count: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// ListPostIDs returns the id of every post.
func (s *postSession) ListPostIDs(ctx context.Context) ([]string, error) {
	sctx := s.bind(ctx)
	cursor, err := s.collection.Find(sctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(sctx)

	var rows []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(sctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}
