package db

import "time"

// RedisClient defines the cache operations the monitor needs.
type RedisClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Ping() error
}
