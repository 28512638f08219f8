package mocks

import "github.com/mikiasgoitom/PetLikes/internal/usecase"

// MockIdentityProvider maps fixed tokens to responsible IDs or errors.
type MockIdentityProvider struct {
	Tokens map[string]string
	Errors map[string]error
}

var _ usecase.IdentityProvider = (*MockIdentityProvider)(nil)

func (m *MockIdentityProvider) ResolveResponsible(token string) (string, error) {
	if err, ok := m.Errors[token]; ok {
		return "", err
	}
	if id, ok := m.Tokens[token]; ok {
		return id, nil
	}
	return "", usecase.ErrInvalidToken
}
