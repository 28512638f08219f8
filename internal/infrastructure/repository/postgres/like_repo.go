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

type LikeRepo struct {
	db *sql.DB
}

func NewLikeRepo(db *sql.DB) *LikeRepo {
	return &LikeRepo{db: db}
}

var _ contract.ILikeRepository = (*LikeRepo)(nil)

func (r *LikeRepo) Session(ctx context.Context) (contract.ILikeSession, error) {
	s, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &likeSession{session: s}, nil
}

type likeSession struct {
	session
}

func (s *likeSession) GetLikeByPostAndPet(ctx context.Context, postID, petID string) (*entity.Like, error) {
	if strings.TrimSpace(postID) == "" || strings.TrimSpace(petID) == "" {
		return nil, contract.ErrNotFound
	}

	var l entity.Like
	var createdAt sql.NullTime
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, "postId", "petId", "createdAt"
		FROM "Likes"
		WHERE "postId" = $1 AND "petId" = $2
	`, postID, petID).Scan(&l.ID, &l.PostID, &l.PetID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve like: %w", err)
	}
	l.CreatedAt = createdAt.Time
	return &l, nil
}

func (s *likeSession) ListLikesByPost(ctx context.Context, postID string) ([]*entity.Like, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, "postId", "petId", "createdAt"
		FROM "Likes"
		WHERE "postId" = $1
		ORDER BY "createdAt" ASC
	`, postID)
	if err != nil {
		if isMalformedID(err) {
			return []*entity.Like{}, nil
		}
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Like, 0)
	for rows.Next() {
		var l entity.Like
		var createdAt sql.NullTime
		if err := rows.Scan(&l.ID, &l.PostID, &l.PetID, &createdAt); err != nil {
			return nil, err
		}
		l.CreatedAt = createdAt.Time
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (s *likeSession) CountLikesByPost(ctx context.Context, postID string) (int64, error) {
	var n int64
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM "Likes" WHERE "postId" = $1`, postID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

// StageLike inserts the like inside an open transaction. The unique
// ("postId", "petId") constraint is checked here, so a concurrent duplicate
// waits for the other transaction and then fails with ErrDuplicateLike.
// The transaction is bound to a non-cancelable context: database/sql rolls a
// transaction back when its context ends, and only Commit or Abort may end it.
func (s *likeSession) StageLike(ctx context.Context, like *entity.Like) (contract.StagedLike, error) {
	ctx = context.WithoutCancel(ctx)
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin like transaction: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO "Likes" (id, "postId", "petId", "createdAt")
		VALUES ($1, $2, $3, $4)
	`, like.ID, like.PostID, like.PetID, like.CreatedAt)
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return nil, contract.ErrDuplicateLike
		}
		return nil, fmt.Errorf("failed to insert like: %w", err)
	}
	return &stagedTx{tx: tx}, nil
}

func (s *likeSession) DeleteLike(ctx context.Context, postID, petID string) error {
	res, err := s.conn.ExecContext(ctx, `
		DELETE FROM "Likes" WHERE "postId" = $1 AND "petId" = $2
	`, postID, petID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return contract.ErrNotFound
	}
	return nil
}

type stagedTx struct {
	tx *sql.Tx
}

func (st *stagedTx) Commit(ctx context.Context) error {
	if err := st.tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return contract.ErrDuplicateLike
		}
		return fmt.Errorf("failed to commit like: %w", err)
	}
	return nil
}

func (st *stagedTx) Abort(ctx context.Context) error {
	if err := st.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to roll back like: %w", err)
	}
	return nil
}
