package entity

import "time"

// Like records that a pet endorsed a post. At most one exists per (PostID, PetID).
type Like struct {
	ID        string    `bson:"_id,omitempty" json:"likeId"`
	PostID    string    `bson:"post_id" json:"postId"`
	PetID     string    `bson:"pet_id" json:"petId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
