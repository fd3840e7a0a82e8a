package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"loyalty-campaigns/internal/core/domain"
)

// PreviewCache implements port.PreviewCache on Redis. Audience previews are
// estimation-only reads, so serving a slightly stale count within the TTL is
// acceptable and saves the aggregate join on every keystroke of a campaign
// editor.
type PreviewCache struct {
	client *redis.Client
}

// NewPreviewCache connects to Redis and verifies connectivity with a short
// ping. The caller owns closing the returned cache.
func NewPreviewCache(ctx context.Context, addr, password string, db int) (*PreviewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &PreviewCache{client: client}, nil
}

// Get returns the cached preview for the key, nil on miss.
func (c *PreviewCache) Get(ctx context.Context, key string) (*domain.AudiencePreview, error) {
	raw, err := c.client.Get(ctx, "audience:preview:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p domain.AudiencePreview
	if err = json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Set stores the preview under the key for ttl.
func (c *PreviewCache) Set(ctx context.Context, key string, p *domain.AudiencePreview, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "audience:preview:"+key, raw, ttl).Err()
}

// Close releases the underlying client.
func (c *PreviewCache) Close() error {
	return c.client.Close()
}
