package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

type likeKey struct {
	postID string
	petID  string
}

type LikeRepo struct {
	mu     sync.RWMutex
	byPair map[likeKey]entity.Like
}

func NewLikeRepo() *LikeRepo {
	return &LikeRepo{byPair: make(map[likeKey]entity.Like)}
}

var _ contract.ILikeRepository = (*LikeRepo)(nil)

// Insert writes a like directly, enforcing pair uniqueness.
func (r *LikeRepo) Insert(l entity.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := likeKey{l.PostID, l.PetID}
	if _, exists := r.byPair[k]; exists {
		return contract.ErrDuplicateLike
	}
	r.byPair[k] = l
	return nil
}

func (r *LikeRepo) Session(ctx context.Context) (contract.ILikeSession, error) {
	return &likeSession{repo: r}, nil
}

type likeSession struct {
	noopSession
	repo *LikeRepo
}

func (s *likeSession) GetLikeByPostAndPet(ctx context.Context, postID, petID string) (*entity.Like, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	l, ok := s.repo.byPair[likeKey{postID, petID}]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return &l, nil
}

func (s *likeSession) ListLikesByPost(ctx context.Context, postID string) ([]*entity.Like, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	out := make([]*entity.Like, 0)
	for k, l := range s.repo.byPair {
		if k.postID == postID {
			l := l
			out = append(out, &l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *likeSession) CountLikesByPost(ctx context.Context, postID string) (int64, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	var n int64
	for k := range s.repo.byPair {
		if k.postID == postID {
			n++
		}
	}
	return n, nil
}

// StageLike holds the like aside; uniqueness is checked again at Commit.
func (s *likeSession) StageLike(ctx context.Context, like *entity.Like) (contract.StagedLike, error) {
	return &stagedLike{repo: s.repo, like: *like}, nil
}

func (s *likeSession) DeleteLike(ctx context.Context, postID, petID string) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	k := likeKey{postID, petID}
	if _, ok := s.repo.byPair[k]; !ok {
		return contract.ErrNotFound
	}
	delete(s.repo.byPair, k)
	return nil
}

type stagedLike struct {
	repo *LikeRepo
	like entity.Like
}

func (st *stagedLike) Commit(ctx context.Context) error {
	return st.repo.Insert(st.like)
}

func (st *stagedLike) Abort(ctx context.Context) error { return nil }
