package models

import "time"

// monitoring_configs
//
// One per venue. If either window bound is set, both must be (validated at
// write time); a null window means "always eligible".
type MonitoringConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID uint `gorm:"uniqueIndex;not null" json:"venue_id"`

	Enabled          bool `gorm:"not null;default:false" json:"enabled"`
	FrequencyMinutes int  `gorm:"not null;default:15" json:"frequency_minutes"`

	// Local time-of-day window in the venue's timezone, "HH:MM".
	StartTimeLocal *string `json:"start_time_local,omitempty"`
	EndTimeLocal   *string `json:"end_time_local,omitempty"`

	DaysAhead int `gorm:"not null;default:7" json:"days_ahead"`

	// Last successful collect, UTC. Never advanced on failure.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
