package dto

import (
	"time"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// LikeRequest is the body of both add and remove.
type LikeRequest struct {
	PostID string `json:"postId" binding:"required,notblank"`
	PetID  string `json:"petId" binding:"required,notblank"`
}

// LikeResponse is one like in the read model.
type LikeResponse struct {
	LikeID    string `json:"likeId"`
	PostID    string `json:"postId"`
	PetID     string `json:"petId"`
	CreatedAt string `json:"createdAt"`
}

// LikesInfoResponse is the body of GET /likes/:postId.
type LikesInfoResponse struct {
	PostID       string         `json:"postId"`
	LikesCount   int            `json:"likes_count"`
	LikesDetails []LikeResponse `json:"likes_details"`
}

// converts an entity.Like to a LikeResponse DTO.
func ToLikeResponse(l *entity.Like) LikeResponse {
	return LikeResponse{
		LikeID:    l.ID,
		PostID:    l.PostID,
		PetID:     l.PetID,
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToLikesInfoResponse(info *usecasecontract.LikesInfo) LikesInfoResponse {
	details := make([]LikeResponse, 0, len(info.Likes))
	for _, l := range info.Likes {
		details = append(details, ToLikeResponse(l))
	}
	return LikesInfoResponse{
		PostID:       info.PostID,
		LikesCount:   info.LikesCount,
		LikesDetails: details,
	}
}
