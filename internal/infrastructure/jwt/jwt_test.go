package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/PetLikes/internal/usecase"
)

func TestResolveResponsible_ValidToken(t *testing.T) {
	mgr := NewJWTManager("secret")
	tok, err := mgr.GenerateToken("resp-1", time.Minute)
	require.NoError(t, err)

	id, err := NewIdentityProvider(mgr).ResolveResponsible(tok)
	require.NoError(t, err)
	assert.Equal(t, "resp-1", id)
}

func TestResolveResponsible_Errors(t *testing.T) {
	mgr := NewJWTManager("secret")
	idp := NewIdentityProvider(mgr)

	expired, err := mgr.GenerateToken("resp-1", -time.Minute)
	require.NoError(t, err)
	otherKey, err := NewJWTManager("other").GenerateToken("resp-1", time.Minute)
	require.NoError(t, err)
	noUser, err := mgr.GenerateToken("", time.Minute)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "resp-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"missing", "", usecase.ErrMissingToken},
		{"expired", expired, usecase.ErrTokenExpired},
		{"wrong secret", otherKey, usecase.ErrInvalidToken},
		{"garbage", "not-a-jwt", usecase.ErrInvalidToken},
		{"no userId claim", noUser, usecase.ErrInvalidToken},
		{"alg none", none, usecase.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idp.ResolveResponsible(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
