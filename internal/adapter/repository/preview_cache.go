package repository

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisPreviewCache keeps rendered preview HTML per resume id. Cache-aside:
// every operation tolerates a missing or unreachable redis.
type RedisPreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPreviewCache(client *redis.Client) *RedisPreviewCache {
	return &RedisPreviewCache{client: client, ttl: 10 * time.Minute}
}

func previewKey(id uuid.UUID) string { return "preview:" + id.String() }

func (c *RedisPreviewCache) Get(ctx context.Context, id uuid.UUID) (string, bool) {
	if c.client == nil {
		return "", false
	}
	html, err := c.client.Get(ctx, previewKey(id)).Result()
	if err != nil {
		return "", false
	}
	return html, true
}

func (c *RedisPreviewCache) Set(ctx context.Context, id uuid.UUID, html string) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, previewKey(id), html, c.ttl).Err(); err != nil {
		log.Printf("preview cache: set %s failed: %v", id, err)
	}
}

func (c *RedisPreviewCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, previewKey(id)).Err(); err != nil {
		log.Printf("preview cache: invalidate %s failed: %v", id, err)
	}
}
