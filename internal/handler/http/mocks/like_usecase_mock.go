package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of the ILikeUseCase interface
type MockLikeUsecase struct {
	// Control mock behavior: a non-nil error is returned as is
	AddLikeErr      error
	RemoveLikeErr   error
	GetLikesInfoErr error
	GetLikeCountErr error

	// Return values
	MockLikesInfo usecasecontract.LikesInfo
	MockCount     int

	mu    sync.Mutex
	Calls []Call
}

// Call records one invocation of a mutating method.
type Call struct {
	Method        string
	PostID        string
	ResponsibleID string
	PetID         string
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &MockLikeUsecase{
		MockLikesInfo: usecasecontract.LikesInfo{
			PostID:     "post-1",
			LikesCount: 1,
			Likes: []*entity.Like{
				{ID: "like-1", PostID: "post-1", PetID: "pet-1", CreatedAt: createdAt},
			},
		},
		MockCount: 1,
	}
}

func (m *MockLikeUsecase) record(method, postID, responsibleID, petID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, Call{Method: method, PostID: postID, ResponsibleID: responsibleID, PetID: petID})
}

func (m *MockLikeUsecase) AddLike(ctx context.Context, postID, responsibleID, petID string) error {
	m.record("AddLike", postID, responsibleID, petID)
	return m.AddLikeErr
}

func (m *MockLikeUsecase) RemoveLike(ctx context.Context, postID, responsibleID, petID string) error {
	m.record("RemoveLike", postID, responsibleID, petID)
	return m.RemoveLikeErr
}

func (m *MockLikeUsecase) GetLikesInfo(ctx context.Context, postID string) (*usecasecontract.LikesInfo, error) {
	if m.GetLikesInfoErr != nil {
		return nil, m.GetLikesInfoErr
	}
	info := m.MockLikesInfo
	info.PostID = postID
	return &info, nil
}

func (m *MockLikeUsecase) GetLikeCount(ctx context.Context, postID string) (int, error) {
	if m.GetLikeCountErr != nil {
		return 0, m.GetLikeCountErr
	}
	return m.MockCount, nil
}
