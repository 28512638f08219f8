package entity

// Post represents a publication authored by a pet.
// LikesCount is a denormalized counter of the Like rows for the post.
type Post struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	PetID      string `bson:"pet_id" json:"pet_id"`
	LikesCount int    `bson:"likes" json:"likes"`
}
