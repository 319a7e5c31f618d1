package db

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	ctx    context.Context
	client *goredis.Client
}

func NewGoRedisClient(ctx context.Context, client *goredis.Client) *GoRedisClient {
	return &GoRedisClient{ctx: ctx, client: client}
}

func (c *GoRedisClient) Set(key, value string, ttl time.Duration) error {
	return c.client.Set(c.ctx, key, value, ttl).Err()
}

func (c *GoRedisClient) Get(key string) (string, error) {
	return c.client.Get(c.ctx, key).Result()
}

func (c *GoRedisClient) Del(key string) error {
	return c.client.Del(c.ctx, key).Err()
}

func (c *GoRedisClient) Ping() error {
	return c.client.Ping(c.ctx).Err()
}
