package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// PetRepository reads the pet (ownership) database.
type PetRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewPetRepository creates and returns a new PetRepository instance.
func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{db: db, collection: db.Collection("pets")}
}

var _ contract.IPetRepository = (*PetRepository)(nil)

func (r *PetRepository) Session(ctx context.Context) (contract.IPetSession, error) {
	s, err := startSession(r.db)
	if err != nil {
		return nil, err
	}
	return &petSession{session: s, collection: r.collection}, nil
}

type petSession struct {
	session
	collection *mongo.Collection
}

// GetPetByID retrieves a single pet by its unique id.
func (s *petSession) GetPetByID(ctx context.Context, petID string) (*entity.Pet, error) {
	var pet entity.Pet
	err := s.collection.FindOne(s.bind(ctx), bson.M{"_id": petID}).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve pet: %w", err)
	}
	return &pet, nil
}
