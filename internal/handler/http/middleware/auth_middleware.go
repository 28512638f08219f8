package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/PetLikes/internal/handler/http/dto"
	"github.com/mikiasgoitom/PetLikes/internal/usecase"
)

const responsibleIDKey = "responsibleId"

// AuthMiddleWare resolves the bearer token to a responsible ID and stores it
// on the context. A missing or expired token is 401, any other rejection 403.
func AuthMiddleWare(idp usecase.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, usecase.ErrMissingToken)
			return
		}

		responsibleID, err := idp.ResolveResponsible(token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrTokenExpired), errors.Is(err, usecase.ErrMissingToken):
				abort(c, http.StatusUnauthorized, err)
			default:
				abort(c, http.StatusForbidden, usecase.ErrInvalidToken)
			}
			return
		}

		c.Set(responsibleIDKey, responsibleID)
		c.Next()
	}
}

// ResponsibleID returns the caller set by AuthMiddleWare.
func ResponsibleID(c *gin.Context) (string, bool) {
	v, ok := c.Get(responsibleIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func abort(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}
