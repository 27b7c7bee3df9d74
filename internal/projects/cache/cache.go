package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/enesocakci/portfolio-backend/internal/projects/domain"
)

const listingKey = "portfolio:projects:all"

// ListingCache keeps the project listing in Redis. A miss or any Redis
// failure falls through to the store; the cache is never authoritative.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

// Get returns the cached listing, or ok=false on a miss or error.
func (c *ListingCache) Get(ctx context.Context) ([]domain.Project, bool) {
	data, err := c.client.Get(ctx, listingKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("project cache read failed", "error", err)
		return nil, false
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		slog.Warn("project cache decode failed", "error", err)
		return nil, false
	}
	return projects, true
}

// Set stores the listing with the configured TTL.
func (c *ListingCache) Set(ctx context.Context, projects []domain.Project) {
	data, err := json.Marshal(projects)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listingKey, data, c.ttl).Err(); err != nil {
		slog.Warn("project cache write failed", "error", err)
	}
}

// Invalidate drops the cached listing. Called after any project mutation.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		slog.Warn("project cache invalidation failed", "error", err)
	}
}
