package contract

import "context"

// Session is a request-scoped handle on one store. Close releases the
// underlying connection and must be called on every exit path.
type Session interface {
	Close(ctx context.Context) error
}
