package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCacheRepository is an in-process response cache.
// Expired entries are invisible to Get and are removed by DeleteExpired.
type MemoryCacheRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return NewMemoryCacheRepositoryWithClock(time.Now)
}

// NewMemoryCacheRepositoryWithClock uses now as the time source.
func NewMemoryCacheRepositoryWithClock(now func() time.Time) *MemoryCacheRepository {
	return &MemoryCacheRepository{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok || !r.now().Before(entry.expiresAt) {
		return nil, false, nil
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, true, nil
}

// Set stores a copy of value. A non-positive ttl removes the key.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ttl <= 0 {
		delete(r.entries, key)
		return nil
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	r.entries[key] = memoryEntry{value: stored, expiresAt: r.now().Add(ttl)}
	return nil
}

// DeleteExpired drops every expired entry and returns how many were removed.
func (r *MemoryCacheRepository) DeleteExpired() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, key)
			removed++
		}
	}

	logger.Log.Debugw("memory cache sweep", "removed", removed, "remaining", len(r.entries))
	return removed
}

// Len returns the number of stored entries, expired ones included.
func (r *MemoryCacheRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
