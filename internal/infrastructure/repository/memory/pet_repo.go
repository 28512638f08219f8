// Package memory holds in-process stores for local runs and tests.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// noopSession is the session handed out by every memory store.
type noopSession struct{}

func (noopSession) Close(ctx context.Context) error { return nil }

type PetRepo struct {
	mu   sync.RWMutex
	byID map[string]entity.Pet
}

func NewPetRepo() *PetRepo {
	return &PetRepo{byID: make(map[string]entity.Pet)}
}

var _ contract.IPetRepository = (*PetRepo)(nil)

// AddPet seeds a pet.
func (r *PetRepo) AddPet(p entity.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *PetRepo) Session(ctx context.Context) (contract.IPetSession, error) {
	return &petSession{repo: r}, nil
}

type petSession struct {
	noopSession
	repo *PetRepo
}

func (s *petSession) GetPetByID(ctx context.Context, petID string) (*entity.Pet, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	p, ok := s.repo.byID[petID]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return &p, nil
}
