package models

import "time"

// courts
//
// Courts are created lazily the first time a snapshot references an unseen
// (venue, playtomic_court_id) pair and only disappear via venue cascade.
type Court struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID          uint   `gorm:"not null;index;uniqueIndex:idx_courts_venue_playtomic" json:"venue_id"`
	PlaytomicCourtID string `gorm:"not null;uniqueIndex:idx_courts_venue_playtomic" json:"playtomic_court_id"`

	Name        string  `gorm:"not null" json:"name"`
	SportType   *string `json:"sport_type,omitempty"`   // e.g. "padel", "tennis"
	SurfaceType *string `json:"surface_type,omitempty"` // e.g. "indoor", "outdoor"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
