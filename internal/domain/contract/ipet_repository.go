package contract

import (
	"context"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// IPetRepository opens sessions on the pet (ownership) store.
type IPetRepository interface {
	Session(ctx context.Context) (IPetSession, error)
}

// IPetSession reads pets. The reactions service never writes to this store.
type IPetSession interface {
	Session
	// GetPetByID returns ErrNotFound when the pet does not exist.
	GetPetByID(ctx context.Context, petID string) (*entity.Pet, error)
}
