package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/uuid"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetManifest(ctx context.Context, id uuid.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, manifestKey(id.String(), false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagManifest(ctx context.Context, id uuid.UUID) (string, error) {
	val, err := c.client.Get(ctx, manifestKey(id.String(), true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetManifest(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	log.Printf("creating cache entry for manifest of asset #%s (ttl %s)...", id, ttl)

	if err := c.client.Set(ctx, manifestKey(id.String(), false), data, ttl).Err(); err != nil {
		log.Printf("redis set failed for manifest of asset #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagManifest(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, manifestKey(id.String(), true), etag, ttl).Err(); err != nil {
		log.Printf("redis set failed for manifest etag of asset #%s: %v", id, err)
	}
}

func (c *Cache) DeleteManifest(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting cache entry for manifest of asset #%s...", id)

	if err := c.client.Del(ctx, manifestKey(id.String(), false)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagManifest(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, manifestKey(id.String(), true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func manifestKey(id string, etag bool) string {
	if etag {
		return "manifest_etag:" + id
	}
	return "manifest:" + id
}
