package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/PetLikes/internal/handler/http/dto"
	"github.com/mikiasgoitom/PetLikes/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// LikeHandlerInterface allows the router to be tested against a mock handler.
type LikeHandlerInterface interface {
	AddLike(*gin.Context)
	RemoveLike(*gin.Context)
	GetLikes(*gin.Context)
}

var _ LikeHandlerInterface = (*LikeHandler)(nil)

type LikeHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewLikeHandler(likeUsecase usecasecontract.ILikeUseCase) *LikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

// AddLike handles POST /likes/add
func (h *LikeHandler) AddLike(c *gin.Context) {
	responsibleID, ok := middleware.ResponsibleID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.LikeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.likeUsecase.AddLike(c.Request.Context(), req.PostID, responsibleID, req.PetID); err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Like added successfully")
}

// RemoveLike handles DELETE /likes/remove
func (h *LikeHandler) RemoveLike(c *gin.Context) {
	responsibleID, ok := middleware.ResponsibleID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.LikeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.likeUsecase.RemoveLike(c.Request.Context(), req.PostID, responsibleID, req.PetID); err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Like removed successfully")
}

// GetLikes handles GET /likes/:postId
func (h *LikeHandler) GetLikes(c *gin.Context) {
	info, err := h.likeUsecase.GetLikesInfo(c.Request.Context(), c.Param("postId"))
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToLikesInfoResponse(info))
}
