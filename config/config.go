package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Scheduler tick period in minutes. Fixed, independent of any per-venue
// monitoring frequency.
const SCHEDULER_TICK_MINUTES = 1

// TTL for cached current-utilization responses, in seconds.
const UTILIZATION_CACHE_TTL_SECONDS = 60

// Settings holds everything loaded from the environment.
type Settings struct {
	Env      string `envconfig:"ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// DB
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"host=localhost user=monitor password=monitor dbname=court_monitor port=5432 sslmode=disable"`

	// Redis (optional; empty disables the utilization cache)
	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Playtomic client
	PlaytomicBaseURL    string  `envconfig:"PLAYTOMIC_BASE_URL" default:"https://playtomic.com/api/v1"`
	RequestDelaySeconds float64 `envconfig:"REQUEST_DELAY_SECONDS" default:"1.0"`
	MaxRetries          int     `envconfig:"MAX_RETRIES" default:"3"`

	// Monitoring defaults applied when a config is created without them.
	DefaultFrequencyMinutes int `envconfig:"DEFAULT_CHECK_FREQUENCY_MINUTES" default:"15"`
	DefaultDaysAhead        int `envconfig:"DEFAULT_DAYS_AHEAD" default:"7"`
}

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	err := envconfig.Process("", &s)
	return s, err
}
