package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{db: db}
}

var _ contract.IPostRepository = (*PostRepo)(nil)

func (r *PostRepo) Session(ctx context.Context) (contract.IPostSession, error) {
	s, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &postSession{session: s}, nil
}

type postSession struct {
	session
}

func (s *postSession) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, contract.ErrNotFound
	}

	var p entity.Post
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, "petId", COALESCE(likes, 0)
		FROM "Posts"
		WHERE id = $1
	`, postID).Scan(&p.ID, &p.PetID, &p.LikesCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &p, nil
}

func (s *postSession) IncrementLikeCount(ctx context.Context, postID string) error {
	return s.exec(ctx, "increment like count", `
		UPDATE "Posts" SET likes = COALESCE(likes, 0) + 1 WHERE id = $1
	`, postID)
}

// DecrementLikeCount floors at zero in the statement itself so concurrent
// removes cannot drive the counter negative.
func (s *postSession) DecrementLikeCount(ctx context.Context, postID string) error {
	return s.exec(ctx, "decrement like count", `
		UPDATE "Posts" SET likes = GREATEST(COALESCE(likes, 0) - 1, 0) WHERE id = $1
	`, postID)
}

func (s *postSession) SetLikeCount(ctx context.Context, postID string, count int) error {
	return s.exec(ctx, "set like count", `
		UPDATE "Posts" SET likes = $2 WHERE id = $1
	`, postID, count)
}

func (s *postSession) ListPostIDs(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT id FROM "Posts" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *postSession) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if isMalformedID(err) {
			return contract.ErrNotFound
		}
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return contract.ErrNotFound
	}
	return nil
}
