package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// session binds one request to a driver session. Every operation of a store
// session runs under it and EndSession returns its resources to the pool.
type session struct {
	sess mongo.Session
}

func startSession(db *mongo.Database) (session, error) {
	sess, err := db.Client().StartSession()
	if err != nil {
		return session{}, fmt.Errorf("failed to start mongo session: %w", err)
	}
	return session{sess: sess}, nil
}

func (s session) bind(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, s.sess)
}

// Close ends the driver session.
func (s session) Close(ctx context.Context) error {
	s.sess.EndSession(ctx)
	return nil
}
