package models

import (
	"time"

	"gorm.io/datatypes"
)

// venues
type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Identifier used by Playtomic. For venues created from a URL this is
	// the slug until the real tenant id is known.
	PlaytomicID string  `gorm:"uniqueIndex;not null" json:"playtomic_id"`
	Slug        *string `gorm:"uniqueIndex" json:"slug,omitempty"`

	Name      string   `gorm:"not null" json:"name"`
	Address   *string  `json:"address,omitempty"`
	City      *string  `json:"city,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// IANA timezone name, used to evaluate the local monitoring window.
	Timezone string `gorm:"not null;default:UTC" json:"timezone"`

	// {"monday": {"open": "08:00", "close": "23:00"}, ...}
	OperatingHours datatypes.JSON `json:"operating_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Courts           []Court                `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
	MonitoringConfig *MonitoringConfig      `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
	Snapshots        []AvailabilitySnapshot `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}
