package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// session pins one pooled connection for the duration of a request.
type session struct {
	conn *sql.Conn
}

func acquire(ctx context.Context, db *sql.DB) (session, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return session{}, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return session{conn: conn}, nil
}

// Close returns the connection to the pool.
func (s session) Close(ctx context.Context) error {
	return s.conn.Close()
}
