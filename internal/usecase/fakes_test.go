package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/logger"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/repository/memory"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

const (
	respR1 = "resp-1"
	respR2 = "resp-2"
	petA   = "pet-a"
	petB   = "pet-b"
	postP  = "post-p"
)

type staticConfig struct {
	policy usecasecontract.NotificationPolicy
}

func (c staticConfig) GetNotificationPolicy() usecasecontract.NotificationPolicy { return c.policy }
func (c staticConfig) GetRateLimitPerSecond() float64                            { return 0 }

type seqUUID struct{ n atomic.Int64 }

func (g *seqUUID) NewUUID() string {
	return fmt.Sprintf("like-%d", g.n.Add(1))
}

// fakeNotifier records dispatched notifications and returns a fixed status.
// With honorCtx it fails like a real HTTP call once ctx is done.
type fakeNotifier struct {
	mu       sync.Mutex
	status   contract.DispatchStatus
	sent     []*entity.Notification
	onSend   func()
	honorCtx bool
}

func (n *fakeNotifier) Dispatch(ctx context.Context, notification *entity.Notification) contract.DispatchResult {
	n.mu.Lock()
	n.sent = append(n.sent, notification)
	n.mu.Unlock()
	if n.onSend != nil {
		n.onSend()
	}
	if n.honorCtx && ctx.Err() != nil {
		return contract.DispatchResult{Status: contract.DispatchFailed, Err: ctx.Err()}
	}
	if n.status == contract.DispatchFailed {
		return contract.DispatchResult{Status: contract.DispatchFailed, Err: errors.New("webhook returned 503")}
	}
	return contract.DispatchResult{Status: n.status}
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []entity.LikeCountChanged
	err    error
}

func (p *fakePublisher) PublishLikeCount(ctx context.Context, evt entity.LikeCountChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

// sessionCounter tracks opened and closed sessions across all stores.
type sessionCounter struct {
	opened atomic.Int64
	closed atomic.Int64
}

func (c *sessionCounter) balanced() bool {
	return c.opened.Load() == c.closed.Load()
}

type countedPetSession struct {
	contract.IPetSession
	c *sessionCounter
}

func (s *countedPetSession) Close(ctx context.Context) error {
	s.c.closed.Add(1)
	return s.IPetSession.Close(ctx)
}

type countedPostSession struct {
	contract.IPostSession
	c *sessionCounter
}

func (s *countedPostSession) Close(ctx context.Context) error {
	s.c.closed.Add(1)
	return s.IPostSession.Close(ctx)
}

type countedLikeSession struct {
	contract.ILikeSession
	c *sessionCounter
}

func (s *countedLikeSession) Close(ctx context.Context) error {
	s.c.closed.Add(1)
	return s.ILikeSession.Close(ctx)
}

type countingPetRepo struct {
	inner contract.IPetRepository
	c     *sessionCounter
}

func (r countingPetRepo) Session(ctx context.Context) (contract.IPetSession, error) {
	s, err := r.inner.Session(ctx)
	if err != nil {
		return nil, err
	}
	r.c.opened.Add(1)
	return &countedPetSession{IPetSession: s, c: r.c}, nil
}

type countingPostRepo struct {
	inner contract.IPostRepository
	c     *sessionCounter
}

func (r countingPostRepo) Session(ctx context.Context) (contract.IPostSession, error) {
	s, err := r.inner.Session(ctx)
	if err != nil {
		return nil, err
	}
	r.c.opened.Add(1)
	return &countedPostSession{IPostSession: s, c: r.c}, nil
}

type countingLikeRepo struct {
	inner contract.ILikeRepository
	c     *sessionCounter
}

func (r countingLikeRepo) Session(ctx context.Context) (contract.ILikeSession, error) {
	s, err := r.inner.Session(ctx)
	if err != nil {
		return nil, err
	}
	r.c.opened.Add(1)
	return &countedLikeSession{ILikeSession: s, c: r.c}, nil
}

// ctxPostRepo fails counter writes on a done context, as database/sql does.
type ctxPostRepo struct {
	inner contract.IPostRepository
}

func (r ctxPostRepo) Session(ctx context.Context) (contract.IPostSession, error) {
	s, err := r.inner.Session(ctx)
	if err != nil {
		return nil, err
	}
	return &ctxPostSession{IPostSession: s}, nil
}

type ctxPostSession struct {
	contract.IPostSession
}

func (s *ctxPostSession) IncrementLikeCount(ctx context.Context, postID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.IPostSession.IncrementLikeCount(ctx, postID)
}

func (s *ctxPostSession) DecrementLikeCount(ctx context.Context, postID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.IPostSession.DecrementLikeCount(ctx, postID)
}

// failingLikeRepo cannot open sessions.
type failingLikeRepo struct{}

func (failingLikeRepo) Session(ctx context.Context) (contract.ILikeSession, error) {
	return nil, errors.New("reaction store unavailable")
}

// harness wires a LikeUsecase onto memory stores seeded with pets A (R1) and
// B (R2) and post P authored by B.
type harness struct {
	uc        *LikeUsecase
	pets      *memory.PetRepo
	posts     *memory.PostRepo
	likes     *memory.LikeRepo
	notifier  *fakeNotifier
	publisher *fakePublisher
	sessions  *sessionCounter
}

func newHarness(t *testing.T, policy usecasecontract.NotificationPolicy) *harness {
	t.Helper()
	h := &harness{
		pets:      memory.NewPetRepo(),
		posts:     memory.NewPostRepo(),
		likes:     memory.NewLikeRepo(),
		notifier:  &fakeNotifier{status: contract.DispatchDelivered},
		publisher: &fakePublisher{},
		sessions:  &sessionCounter{},
	}
	require.NoError(t, h.pets.AddPet(entity.Pet{ID: petA, ResponsibleID: respR1, Name: "Rex"}))
	require.NoError(t, h.pets.AddPet(entity.Pet{ID: petB, ResponsibleID: respR2, Name: "Luna"}))
	require.NoError(t, h.posts.AddPost(entity.Post{ID: postP, PetID: petB}))

	h.uc = NewLikeUsecase(
		countingPetRepo{h.pets, h.sessions},
		countingPostRepo{ctxPostRepo{h.posts}, h.sessions},
		countingLikeRepo{h.likes, h.sessions},
		h.notifier,
		&seqUUID{},
		logger.NewSlogLoggerTo(io.Discard, "debug", "text"),
		staticConfig{policy: policy},
	)
	h.uc.SetLikeCountPublisher(h.publisher)
	t.Cleanup(func() {
		require.True(t, h.sessions.balanced(), "opened %d sessions, closed %d", h.sessions.opened.Load(), h.sessions.closed.Load())
	})
	return h
}

func (h *harness) counter(t *testing.T) int {
	t.Helper()
	s, err := h.posts.Session(context.Background())
	require.NoError(t, err)
	p, err := s.GetPostByID(context.Background(), postP)
	require.NoError(t, err)
	return p.LikesCount
}

func (h *harness) likeRows(t *testing.T) []*entity.Like {
	t.Helper()
	s, err := h.likes.Session(context.Background())
	require.NoError(t, err)
	likes, err := s.ListLikesByPost(context.Background(), postP)
	require.NoError(t, err)
	return likes
}
