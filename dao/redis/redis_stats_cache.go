package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"court-monitor/db"
	"court-monitor/models"
)

const CURRENT_UTILIZATION_KEY_FORMAT_V1 = "utilization_current_v1:%d:%s"

// RedisStatsCache caches computed utilization figures so repeated dashboard
// polls do not re-run the latest-per-slot aggregation.
type RedisStatsCache struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisStatsCache initializes a RedisStatsCache with the Redis client.
func NewRedisStatsCache(client db.RedisClient, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

// GetCurrentUtilization returns the cached stats for (venue, date), or false
// when absent or unreadable.
func (c *RedisStatsCache) GetCurrentUtilization(venueID uint, date string) (*models.UtilizationCurrent, bool) {
	key := fmt.Sprintf(CURRENT_UTILIZATION_KEY_FORMAT_V1, venueID, date)
	raw, err := c.client.Get(key)
	if err != nil {
		return nil, false
	}

	var stats models.UtilizationCurrent
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		log.Printf("[RedisStatsCache] Dropping unreadable entry %s: %v", key, err)
		c.client.Del(key)
		return nil, false
	}
	return &stats, true
}

// SetCurrentUtilization caches the stats for (venue, date).
func (c *RedisStatsCache) SetCurrentUtilization(stats *models.UtilizationCurrent) error {
	key := fmt.Sprintf(CURRENT_UTILIZATION_KEY_FORMAT_V1, stats.VenueID, stats.Date)
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("[RedisStatsCache] failed to marshal stats: %v", err)
	}
	return c.client.Set(key, string(data), c.ttl)
}

// InvalidateCurrentUtilization drops the cached entry after a fresh collect.
func (c *RedisStatsCache) InvalidateCurrentUtilization(venueID uint, date string) {
	key := fmt.Sprintf(CURRENT_UTILIZATION_KEY_FORMAT_V1, venueID, date)
	if err := c.client.Del(key); err != nil {
		log.Printf("[RedisStatsCache] Failed to invalidate %s: %v", key, err)
	}
}
