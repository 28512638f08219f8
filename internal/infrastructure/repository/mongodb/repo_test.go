package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/database"
)

// openTestDB returns a throwaway database on MONGODB_URI, dropped on cleanup.
func openTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}
	client, err := database.NewMongoDBClient(uri)
	require.NoError(t, err)
	db := client.Client.Database("petlikes_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		client.Disconnect()
	})
	return db
}

func newLike(postID, petID string) *entity.Like {
	return &entity.Like{ID: uuid.NewString(), PostID: postID, PetID: petID, CreatedAt: time.Now().UTC()}
}

func likeSessionFor(t *testing.T, db *mongo.Database) contract.ILikeSession {
	t.Helper()
	repo := NewLikeRepository(db)
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	s, err := repo.Session(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestLikeSession_DuplicateCommitIsDuplicateLike(t *testing.T) {
	db := openTestDB(t)
	first, second := likeSessionFor(t, db), likeSessionFor(t, db)
	ctx := context.Background()

	// both requests pass staging; the unique index settles it at commit
	a, err := first.StageLike(ctx, newLike("post-1", "pet-a"))
	require.NoError(t, err)
	b, err := second.StageLike(ctx, newLike("post-1", "pet-a"))
	require.NoError(t, err)

	require.NoError(t, a.Commit(ctx))
	assert.ErrorIs(t, b.Commit(ctx), contract.ErrDuplicateLike)

	n, err := first.CountLikesByPost(ctx, "post-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestLikeSession_AbortLeavesNoDocument(t *testing.T) {
	db := openTestDB(t)
	s := likeSessionFor(t, db)
	ctx := context.Background()

	staged, err := s.StageLike(ctx, newLike("post-1", "pet-a"))
	require.NoError(t, err)
	require.NoError(t, staged.Abort(ctx))
	assert.Error(t, staged.Commit(ctx), "an aborted like cannot be committed")

	_, err = s.GetLikeByPostAndPet(ctx, "post-1", "pet-a")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestLikeSession_DeleteIsStrictAndListIsOrdered(t *testing.T) {
	db := openTestDB(t)
	s := likeSessionFor(t, db)
	ctx := context.Background()

	assert.ErrorIs(t, s.DeleteLike(ctx, "post-1", "pet-a"), contract.ErrNotFound)

	older := newLike("post-1", "pet-b")
	older.CreatedAt = older.CreatedAt.Add(-time.Minute)
	for _, l := range []*entity.Like{newLike("post-1", "pet-a"), older} {
		staged, err := s.StageLike(ctx, l)
		require.NoError(t, err)
		require.NoError(t, staged.Commit(ctx))
	}
	likes, err := s.ListLikesByPost(ctx, "post-1")
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, "pet-b", likes[0].PetID)

	require.NoError(t, s.DeleteLike(ctx, "post-1", "pet-a"))
	assert.ErrorIs(t, s.DeleteLike(ctx, "post-1", "pet-a"), contract.ErrNotFound)
}

func TestPostSession_CounterStatements(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, err := db.Collection("posts").InsertOne(ctx, entity.Post{ID: "post-1", PetID: "pet-b"})
	require.NoError(t, err)

	s, err := NewPostRepository(db).Session(ctx)
	require.NoError(t, err)
	defer s.Close(ctx)

	// existing post at zero: accepted, stays at zero
	require.NoError(t, s.DecrementLikeCount(ctx, "post-1"))
	p, err := s.GetPostByID(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.LikesCount)

	require.NoError(t, s.IncrementLikeCount(ctx, "post-1"))
	require.NoError(t, s.IncrementLikeCount(ctx, "post-1"))
	require.NoError(t, s.DecrementLikeCount(ctx, "post-1"))
	p, err = s.GetPostByID(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.LikesCount)

	assert.ErrorIs(t, s.DecrementLikeCount(ctx, "post-ghost"), contract.ErrNotFound)
	assert.ErrorIs(t, s.IncrementLikeCount(ctx, "post-ghost"), contract.ErrNotFound)
	assert.ErrorIs(t, s.SetLikeCount(ctx, "post-ghost", 3), contract.ErrNotFound)

	ids, err := s.ListPostIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1"}, ids)
}
