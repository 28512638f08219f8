package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// LikeUsecase runs the reaction-mutation protocol across the pet, post and
// reaction stores. The stores share no transaction: a like is committed first
// and the post counter is updated afterwards in its own commit.
type LikeUsecase struct {
	petRepo    contract.IPetRepository
	postRepo   contract.IPostRepository
	likeRepo   contract.ILikeRepository
	notifier   contract.INotificationDispatcher
	uuidgen    contract.IUUIDGenerator
	logger     usecasecontract.IAppLogger
	policy     usecasecontract.NotificationPolicy
	countCache contract.ILikeCountCache
	publisher  contract.ILikeCountPublisher
	now        func() time.Time
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(
	petRepo contract.IPetRepository,
	postRepo contract.IPostRepository,
	likeRepo contract.ILikeRepository,
	notifier contract.INotificationDispatcher,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *LikeUsecase {
	policy := config.GetNotificationPolicy()
	if policy != usecasecontract.NotificationPolicyBestEffort {
		policy = usecasecontract.NotificationPolicyGating
	}
	return &LikeUsecase{
		petRepo:  petRepo,
		postRepo: postRepo,
		likeRepo: likeRepo,
		notifier: notifier,
		uuidgen:  uuidgen,
		logger:   logger,
		policy:   policy,
		now:      time.Now,
	}
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// SetLikeCountCache plugs in the read-through counter cache.
func (u *LikeUsecase) SetLikeCountCache(cache contract.ILikeCountCache) {
	u.countCache = cache
}

// SetLikeCountPublisher plugs in the live counter broadcast.
func (u *LikeUsecase) SetLikeCountPublisher(publisher contract.ILikeCountPublisher) {
	u.publisher = publisher
}

// AddLike records that petID likes postID on behalf of responsibleID.
//
// Once started the protocol runs to completion even if the caller goes away;
// the notification timeout is its only deadline.
func (u *LikeUsecase) AddLike(ctx context.Context, postID, responsibleID, petID string) (err error) {
	defer func() { metrics.ObserveLikeMutation("add", mutationOutcome(err)) }()
	ctx = context.WithoutCancel(ctx)

	s, err := u.openSessions(ctx, true)
	if err != nil {
		return err
	}
	defer s.close(ctx, u.logger)

	pet, err := u.validateOwnership(ctx, s.pets, petID, responsibleID)
	if err != nil {
		return err
	}
	post, err := u.getPost(ctx, s.posts, postID)
	if err != nil {
		return err
	}
	if _, err := s.likes.GetLikeByPostAndPet(ctx, postID, petID); err == nil {
		return ErrLikeAlreadyExists
	} else if !errors.Is(err, contract.ErrNotFound) {
		return fmt.Errorf("failed to retrieve existing like: %w", err)
	}

	like := &entity.Like{
		ID:        u.uuidgen.NewUUID(),
		PostID:    postID,
		PetID:     petID,
		CreatedAt: u.now().UTC(),
	}
	staged, err := s.likes.StageLike(ctx, like)
	if err != nil {
		return translateLikeWriteError(err)
	}

	notification, err := u.buildNotification(ctx, s.pets, pet, post)
	if err != nil {
		u.abort(ctx, staged, like)
		return err
	}

	result := u.dispatch(ctx, notification)
	if !result.OK() {
		if u.policy == usecasecontract.NotificationPolicyGating {
			u.abort(ctx, staged, like)
			return fmt.Errorf("%w: %v", ErrNotificationFailed, result.Err)
		}
		u.logger.Warnf("like notification failed, committing anyway: post=%s pet=%s err=%v", postID, petID, result.Err)
	}

	if err := staged.Commit(ctx); err != nil {
		return translateLikeWriteError(err)
	}
	if err := s.posts.IncrementLikeCount(ctx, postID); err != nil {
		u.logger.Errorf("like committed but counter not incremented: post=%s like=%s err=%v", postID, like.ID, err)
		return fmt.Errorf("failed to increment like count: %w", err)
	}

	u.logger.Infof("like added: post=%s pet=%s like=%s notification=%s", postID, petID, like.ID, result.Status)
	u.broadcastLikeCount(ctx, s.posts, postID)
	return nil
}

// RemoveLike deletes the like petID gave to postID. Removing a like that does
// not exist fails with ErrLikeNotFound. Like AddLike it ignores caller
// cancellation.
func (u *LikeUsecase) RemoveLike(ctx context.Context, postID, responsibleID, petID string) (err error) {
	defer func() { metrics.ObserveLikeMutation("remove", mutationOutcome(err)) }()
	ctx = context.WithoutCancel(ctx)

	s, err := u.openSessions(ctx, true)
	if err != nil {
		return err
	}
	defer s.close(ctx, u.logger)

	if _, err := u.validateOwnership(ctx, s.pets, petID, responsibleID); err != nil {
		return err
	}
	if _, err := u.getPost(ctx, s.posts, postID); err != nil {
		return err
	}
	if _, err := s.likes.GetLikeByPostAndPet(ctx, postID, petID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrLikeNotFound
		}
		return fmt.Errorf("failed to retrieve existing like: %w", err)
	}

	if err := s.likes.DeleteLike(ctx, postID, petID); err != nil {
		// a concurrent remove won the race
		if errors.Is(err, contract.ErrNotFound) {
			return ErrLikeNotFound
		}
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if err := s.posts.DecrementLikeCount(ctx, postID); err != nil {
		u.logger.Errorf("like deleted but counter not decremented: post=%s pet=%s err=%v", postID, petID, err)
		return fmt.Errorf("failed to decrement like count: %w", err)
	}

	u.logger.Infof("like removed: post=%s pet=%s", postID, petID)
	u.broadcastLikeCount(ctx, s.posts, postID)
	return nil
}

// GetLikesInfo returns the (possibly cached) counter and every like of a post.
func (u *LikeUsecase) GetLikesInfo(ctx context.Context, postID string) (*usecasecontract.LikesInfo, error) {
	s, err := u.openSessions(ctx, false)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx, u.logger)

	post, err := u.getPost(ctx, s.posts, postID)
	if err != nil {
		return nil, err
	}
	count := u.readThroughCount(ctx, post)

	likes, err := s.likes.ListLikesByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes for post %s: %w", postID, err)
	}
	return &usecasecontract.LikesInfo{PostID: postID, LikesCount: count, Likes: likes}, nil
}

// GetLikeCount returns the counter of a post through the cache.
func (u *LikeUsecase) GetLikeCount(ctx context.Context, postID string) (int, error) {
	posts, err := u.postRepo.Session(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to open post store session: %w", err)
	}
	defer closeSession(ctx, posts, "post", u.logger)

	post, err := u.getPost(ctx, posts, postID)
	if err != nil {
		return 0, err
	}
	return u.readThroughCount(ctx, post), nil
}

func (u *LikeUsecase) validateOwnership(ctx context.Context, pets contract.IPetSession, petID, responsibleID string) (*entity.Pet, error) {
	pet, err := pets.GetPetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to retrieve pet: %w", err)
	}
	if !pet.IsOwnedBy(responsibleID) {
		return nil, ErrForbidden
	}
	return pet, nil
}

func (u *LikeUsecase) getPost(ctx context.Context, posts contract.IPostSession, postID string) (*entity.Post, error) {
	post, err := posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return post, nil
}

// notificationContent is shown verbatim by the notifications service.
const notificationContent = "%s le dio like a una publicación de %s."

func (u *LikeUsecase) buildNotification(ctx context.Context, pets contract.IPetSession, liker *entity.Pet, post *entity.Post) (*entity.Notification, error) {
	owner, err := pets.GetPetByID(ctx, post.PetID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrPostOwnerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post owner pet: %w", err)
	}
	return &entity.Notification{
		Event: entity.NotificationEventLikeAdded,
		Data: entity.NotificationData{
			Type:          entity.NotificationTypeLikes,
			ActorID:       liker.ID,
			RecipientID:   post.ID,
			ResponsibleID: owner.ResponsibleID,
			Timestamp:     u.now().UTC(),
			Content:       fmt.Sprintf(notificationContent, liker.Name, owner.Name),
		},
	}, nil
}

func (u *LikeUsecase) dispatch(ctx context.Context, n *entity.Notification) contract.DispatchResult {
	t0 := time.Now()
	result := u.notifier.Dispatch(ctx, n)
	go metrics.ObserveNotification(result.Status.String(), time.Since(t0).Seconds())
	return result
}

func (u *LikeUsecase) abort(ctx context.Context, staged contract.StagedLike, like *entity.Like) {
	if err := staged.Abort(ctx); err != nil {
		u.logger.Errorf("failed to abort staged like: post=%s pet=%s err=%v", like.PostID, like.PetID, err)
	}
}

func (u *LikeUsecase) readThroughCount(ctx context.Context, post *entity.Post) int {
	if u.countCache == nil {
		return post.LikesCount
	}
	t0 := time.Now()
	cached, found, err := u.countCache.GetLikeCount(ctx, post.ID)
	elapsed := time.Since(t0)
	switch {
	case err == nil && found:
		go metrics.IncCacheHit()
		go metrics.ObserveCacheLookup(elapsed.Seconds())
		u.logger.Debugf("cache hit: likes count post=%s took=%s", post.ID, elapsed)
		return cached
	case err == nil:
		go metrics.IncCacheMiss()
		go metrics.ObserveCacheLookup(elapsed.Seconds())
		u.logger.Debugf("cache miss: likes count post=%s took=%s", post.ID, elapsed)
	default:
		go metrics.IncCacheError()
		u.logger.Warnf("cache error: likes count post=%s err=%v took=%s", post.ID, err, elapsed)
	}
	if err := u.countCache.SetLikeCount(ctx, post.ID, post.LikesCount); err != nil {
		u.logger.Warnf("cache set failed: likes count post=%s err=%v", post.ID, err)
	}
	return post.LikesCount
}

func (u *LikeUsecase) broadcastLikeCount(ctx context.Context, posts contract.IPostSession, postID string) {
	if u.publisher == nil {
		return
	}
	post, err := posts.GetPostByID(ctx, postID)
	if err != nil {
		u.logger.Warnf("skipping likes broadcast: post=%s err=%v", postID, err)
		return
	}
	evt := entity.LikeCountChanged{PostID: postID, LikesCount: post.LikesCount}
	if err := u.publisher.PublishLikeCount(ctx, evt); err != nil {
		go metrics.IncBroadcastFailure()
		u.logger.Warnf("likes broadcast failed: post=%s err=%v", postID, err)
	}
}

// translateLikeWriteError maps a uniqueness violation raised by the reaction
// store onto the same outcome as the duplicate pre-check.
func translateLikeWriteError(err error) error {
	if errors.Is(err, contract.ErrDuplicateLike) {
		return ErrLikeAlreadyExists
	}
	return fmt.Errorf("failed to save like: %w", err)
}

func mutationOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrLikeNotFound), errors.Is(err, ErrPostOwnerNotFound):
		return "not_found"
	case errors.Is(err, ErrLikeAlreadyExists):
		return "conflict"
	case errors.Is(err, ErrNotificationFailed):
		return "notification_failed"
	default:
		return "error"
	}
}
