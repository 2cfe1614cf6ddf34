package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupCache implements ports.WebhookDedupCache. It is only a fast path;
// the processed_webhook_events table stays authoritative.
type DedupCache struct {
	client goredis.Cmdable
	prefix string
}

func NewDedupCache(client goredis.Cmdable) *DedupCache {
	return &DedupCache{client: client, prefix: "webhook:processed:"}
}

// Seen reports whether key was remembered and has not expired.
func (c *DedupCache) Seen(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis dedup exists: %w", err)
	}
	return n > 0, nil
}

// Remember marks key as processed for ttl.
func (c *DedupCache) Remember(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis dedup set: %w", err)
	}
	return nil
}
