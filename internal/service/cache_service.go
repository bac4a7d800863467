package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"school-activities/internal/domain"
	"school-activities/pkg/redis"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CacheService caches the serialized activity listing in Redis.
// Keys carry a per-instance epoch and the registry version, so neither a
// previous process nor another instance sharing the server can serve its
// listing here, and a signup or unregister always moves to a fresh key.
type CacheService struct {
	redis  *redis.Client
	logger *zap.Logger
	epoch  string

	mu      sync.Mutex
	lastKey string // most recent key written by this instance
}

// NewCacheService creates a new cache service
func NewCacheService(redisClient *redis.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redisClient,
		logger: logger,
		epoch:  uuid.NewString(),
	}
}

func (c *CacheService) listingKey(version uint64) string {
	return fmt.Sprintf("%s:%s:v%d", c.redis.KeyBuilder.KeyActivitiesAll(), c.epoch, version)
}

// GetActivitiesJSON returns the listing for the given version, calling
// snapshot on a cache miss. snapshot may return a newer version than asked
// for; the result is stored under the version it reports.
func (c *CacheService) GetActivitiesJSON(ctx context.Context, version uint64, snapshot func() (domain.Activities, uint64)) ([]byte, error) {
	key := c.listingKey(version)

	cached, err := c.redis.Get(ctx, key)
	if err == nil && cached != "" {
		c.logger.Debug("Activities cache hit", zap.Uint64("version", version))
		return []byte(cached), nil
	}
	if err != nil && err != redis.Nil {
		c.logger.Warn("Activities cache error, falling back to registry",
			zap.Uint64("version", version),
			zap.Error(err))
	}

	activities, current := snapshot()
	data, err := json.Marshal(activities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode activities: %w", err)
	}

	c.store(ctx, c.listingKey(current), data, current)
	return data, nil
}

// store writes the listing and drops the entry it supersedes
func (c *CacheService) store(ctx context.Context, key string, data []byte, version uint64) {
	if err := c.redis.Set(ctx, key, data, redis.TTLActivities); err != nil {
		c.logger.Warn("Failed to cache activities", zap.Uint64("version", version), zap.Error(err))
		return
	}

	c.mu.Lock()
	previous := c.lastKey
	c.lastKey = key
	c.mu.Unlock()

	if previous == "" || previous == key {
		return
	}
	if err := c.redis.Delete(ctx, previous); err != nil {
		c.logger.Debug("Failed to drop superseded listing", zap.String("key", previous), zap.Error(err))
	}
}
