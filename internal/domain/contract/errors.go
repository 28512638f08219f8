package contract

import "errors"

// Storage-level errors every repository implementation translates its driver errors into.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateLike = errors.New("like already exists for this post and pet")
)
