package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
)

// Generator issues time-ordered (v7) UUIDs for like records, so ids sort in
// creation order within a post.
type Generator struct {
	fallback func() uuid.UUID
}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{fallback: uuid.New}
}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does
		return g.fallback().String()
	}
	return id.String()
}
