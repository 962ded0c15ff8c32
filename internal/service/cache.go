package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DashboardCacheTTL bounds how stale a cached dashboard can get.
const DashboardCacheTTL = 10 * time.Minute

// RedisDashboardCache keeps rendered dashboards in Redis
type RedisDashboardCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// Ensure RedisDashboardCache implements DashboardCache
var _ DashboardCache = (*RedisDashboardCache)(nil)

// NewRedisDashboardCache creates a cache with the default TTL
func NewRedisDashboardCache(client *redis.Client) *RedisDashboardCache {
	return &RedisDashboardCache{
		redis: client,
		ttl:   DashboardCacheTTL,
	}
}

func dashboardKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// Get returns the cached entry, or nil on a miss
func (c *RedisDashboardCache) Get(ctx context.Context, userID uuid.UUID) (*CachedDashboard, error) {
	data, err := c.redis.Get(ctx, dashboardKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard from Redis: %w", err)
	}

	var entry CachedDashboard
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard: %w", err)
	}
	return &entry, nil
}

// Set stores entry for the cache TTL
func (c *RedisDashboardCache) Set(ctx context.Context, userID uuid.UUID, entry *CachedDashboard) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard: %w", err)
	}
	if err := c.redis.Set(ctx, dashboardKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save dashboard to Redis: %w", err)
	}
	return nil
}

// Invalidate drops the user's cached dashboard
func (c *RedisDashboardCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.redis.Del(ctx, dashboardKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete dashboard from Redis: %w", err)
	}
	return nil
}
