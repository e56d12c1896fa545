package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// RedisCachePrefix namespaces gateway entries in a shared Redis.
const RedisCachePrefix = "gw-currency-converter:"

// RedisCacheRepository stores encoded responses in Redis.
// Expiry is left to Redis.
type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{client: client}
}

// Get returns the value under key. A missing key is not an error.
func (r *RedisCacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, RedisCachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("redis cache miss", "key", key)
		return nil, false, nil
	}
	if err != nil {
		logger.Log.Errorw("redis get failed", "key", key, "error", err)
		return nil, false, err
	}

	logger.Log.Debugw("redis cache hit", "key", key, "bytes", len(val))
	return val, true, nil
}

// Set stores value under key for ttl.
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, RedisCachePrefix+key, value, ttl).Err()

	logger.Log.Debugw("redis set",
		"key", key,
		"ttl", ttl.String(),
		"error", err,
	)

	return err
}

// Ping checks the connection.
func (r *RedisCacheRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
