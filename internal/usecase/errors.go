package usecase

import "errors"

// Outcomes of the reaction-mutation protocol. Handlers map them to status codes.
var (
	ErrForbidden          = errors.New("responsible does not own the pet")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostOwnerNotFound  = errors.New("owner pet not found")
	ErrLikeNotFound       = errors.New("like does not exist")
	ErrLikeAlreadyExists  = errors.New("like already exists")
	ErrNotificationFailed = errors.New("failed to send like notification")
)

// Identity errors returned by an IdentityProvider.
var (
	ErrMissingToken = errors.New("token missing")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
