package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// NewRedisFromURL parses a redis:// URL and returns a client. A failed ping is
// logged but not fatal: the counter cache degrades to store reads.
func NewRedisFromURL(ctx context.Context, redisURL string, logger usecasecontract.IAppLogger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warnf("redis ping failed, continuing without a warm connection: %v", err)
	}
	return rdb, nil
}

// Close releases the client, ignoring errors on shutdown.
func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
