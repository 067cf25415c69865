package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the redis connection backing the geocode result cache.
// The startup ping surfaces a bad REDIS_URL immediately; the caller treats
// a failure as "run without the cache", not as fatal.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
