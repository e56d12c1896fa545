package services

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
)

// Cache lifetimes per operation.
const (
	LatestRatesTTL     = time.Hour
	ConversionTTL      = time.Hour
	HistoricalRatesTTL = 24 * time.Hour
)

// ResponseCache stores encoded results under a key with a per-entry TTL.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// getOrFetch returns the cached value for key or calls fetch and stores its result.
//
// There is no single-flight: concurrent misses on the same key each call fetch
// and the last store wins. A failed fetch is never stored. Cache errors are
// logged and degrade to a miss or a skipped store.
func getOrFetch[T any](
	ctx context.Context,
	cache ResponseCache,
	operation, key string,
	ttl time.Duration,
	fetch func(ctx context.Context) (*T, error),
) (*T, error) {
	raw, found, err := cache.Get(ctx, key)
	switch {
	case err != nil:
		logger.Log.Warnw("cache read failed", "key", key, "error", err)
	case found:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.CacheLookupsTotal.WithLabelValues(operation, metrics.CacheHit).Inc()
			logger.Log.Debugw("cache hit", "key", key)
			return &cached, nil
		}
		logger.Log.Warnw("cache entry could not be decoded", "key", key, "error", err)
	}

	metrics.CacheLookupsTotal.WithLabelValues(operation, metrics.CacheMiss).Inc()
	logger.Log.Infow("cache miss, fetching from upstream", "key", key)

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		logger.Log.Errorw("failed to encode value for cache", "key", key, "error", err)
		return value, nil
	}
	if err := cache.Set(ctx, key, encoded, ttl); err != nil {
		logger.Log.Warnw("cache write failed", "key", key, "error", err)
	}

	return value, nil
}
