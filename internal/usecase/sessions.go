package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// storeSessions holds the per-request sessions on the three stores.
type storeSessions struct {
	pets  contract.IPetSession
	posts contract.IPostSession
	likes contract.ILikeSession
}

// openSessions acquires a session on each store the request needs. On error
// every session opened so far is released before returning.
func (u *LikeUsecase) openSessions(ctx context.Context, withPets bool) (*storeSessions, error) {
	s := &storeSessions{}
	var err error
	if withPets {
		if s.pets, err = u.petRepo.Session(ctx); err != nil {
			return nil, fmt.Errorf("failed to open pet store session: %w", err)
		}
	}
	if s.posts, err = u.postRepo.Session(ctx); err != nil {
		s.close(ctx, u.logger)
		return nil, fmt.Errorf("failed to open post store session: %w", err)
	}
	if s.likes, err = u.likeRepo.Session(ctx); err != nil {
		s.close(ctx, u.logger)
		return nil, fmt.Errorf("failed to open reaction store session: %w", err)
	}
	return s, nil
}

func (s *storeSessions) close(ctx context.Context, logger usecasecontract.IAppLogger) {
	if s.likes != nil {
		closeSession(ctx, s.likes, "reaction", logger)
	}
	if s.posts != nil {
		closeSession(ctx, s.posts, "post", logger)
	}
	if s.pets != nil {
		closeSession(ctx, s.pets, "pet", logger)
	}
}

func closeSession(ctx context.Context, session contract.Session, store string, logger usecasecontract.IAppLogger) {
	// release even when the request context is already done
	if err := session.Close(context.WithoutCancel(ctx)); err != nil {
		logger.Warnf("failed to close %s store session: %v", store, err)
	}
}
