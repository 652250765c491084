package cache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type RedisResolveCache struct {
	client *redis.Client
	prefix string
}

func NewRedisResolveCache(addr string, password string, db int) *RedisResolveCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisResolveCache{client: client, prefix: "resolve:"}
}

func (c *RedisResolveCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisResolveCache) Close() error {
	return c.client.Close()
}

func (c *RedisResolveCache) Get(ctx context.Context, query string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+query).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisResolveCache) Set(ctx context.Context, query string, itemID string, ttl time.Duration) error {
	if itemID == "" {
		return nil
	}
	return c.client.Set(ctx, c.prefix+query, itemID, ttl).Err()
}
