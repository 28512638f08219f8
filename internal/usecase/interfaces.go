package usecase

// IdentityProvider turns a bearer credential into the caller's responsible ID.
// It returns ErrTokenExpired, ErrInvalidToken, or ErrMissingToken on failure.
type IdentityProvider interface {
	ResolveResponsible(token string) (string, error)
}
