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

type PetRepo struct {
	db *sql.DB
}

func NewPetRepo(db *sql.DB) *PetRepo {
	return &PetRepo{db: db}
}

var _ contract.IPetRepository = (*PetRepo)(nil)

func (r *PetRepo) Session(ctx context.Context) (contract.IPetSession, error) {
	s, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &petSession{session: s}, nil
}

type petSession struct {
	session
}

func (s *petSession) GetPetByID(ctx context.Context, petID string) (*entity.Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, contract.ErrNotFound
	}

	var p entity.Pet
	var name sql.NullString
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, "responsibleId", name
		FROM "Pets"
		WHERE id = $1
	`, petID).Scan(&p.ID, &p.ResponsibleID, &name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve pet: %w", err)
	}
	p.Name = name.String
	return &p, nil
}
