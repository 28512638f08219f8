package jwt

import (
	"errors"
	"strings"

	"github.com/mikiasgoitom/PetLikes/internal/usecase"
)

// IdentityAdapter adapts JWTManager to the usecase.IdentityProvider interface.
type IdentityAdapter struct {
	mgr *JWTManager
}

func NewIdentityProvider(mgr *JWTManager) usecase.IdentityProvider {
	return &IdentityAdapter{mgr: mgr}
}

// ResolveResponsible verifies the token and returns its userId claim.
func (a *IdentityAdapter) ResolveResponsible(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", usecase.ErrMissingToken
	}
	claims, err := a.mgr.VerifyToken(token)
	if err != nil {
		if errors.Is(err, ErrExpired) {
			return "", usecase.ErrTokenExpired
		}
		return "", usecase.ErrInvalidToken
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return "", usecase.ErrInvalidToken
	}
	return claims.UserID, nil
}
