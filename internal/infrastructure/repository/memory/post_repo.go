package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

type PostRepo struct {
	mu   sync.RWMutex
	byID map[string]entity.Post
}

func NewPostRepo() *PostRepo {
	return &PostRepo{byID: make(map[string]entity.Post)}
}

var _ contract.IPostRepository = (*PostRepo)(nil)

// AddPost seeds a post.
func (r *PostRepo) AddPost(p entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("post id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *PostRepo) Session(ctx context.Context) (contract.IPostSession, error) {
	return &postSession{repo: r}, nil
}

type postSession struct {
	noopSession
	repo *PostRepo
}

func (s *postSession) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	p, ok := s.repo.byID[postID]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return &p, nil
}

func (s *postSession) IncrementLikeCount(ctx context.Context, postID string) error {
	return s.update(postID, func(n int) int { return n + 1 })
}

func (s *postSession) DecrementLikeCount(ctx context.Context, postID string) error {
	return s.update(postID, func(n int) int { return max(n-1, 0) })
}

func (s *postSession) SetLikeCount(ctx context.Context, postID string, count int) error {
	return s.update(postID, func(int) int { return count })
}

func (s *postSession) ListPostIDs(ctx context.Context) ([]string, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	ids := make([]string, 0, len(s.repo.byID))
	for id := range s.repo.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *postSession) update(postID string, fn func(int) int) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	p, ok := s.repo.byID[postID]
	if !ok {
		return contract.ErrNotFound
	}
	p.LikesCount = fn(p.LikesCount)
	s.repo.byID[postID] = p
	return nil
}
