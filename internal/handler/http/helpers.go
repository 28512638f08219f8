package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/PetLikes/internal/handler/http/dto"
	"github.com/mikiasgoitom/PetLikes/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// UseCaseErrorHandler writes the status and message for a use case error.
func UseCaseErrorHandler(c *gin.Context, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !errors.Is(err, usecase.ErrNotificationFailed) {
		_ = c.Error(err)
		msg = "internal server error"
	}
	ErrorHandler(c, status, msg)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrInvalidToken):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrPostNotFound),
		errors.Is(err, usecase.ErrLikeNotFound),
		errors.Is(err, usecase.ErrPostOwnerNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrLikeAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrMissingToken), errors.Is(err, usecase.ErrTokenExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
