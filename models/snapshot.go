package models

import "time"

// Slot status values observed at poll time.
const (
	SlotStatusBooked  = "booked"
	SlotStatusFree    = "free"
	SlotStatusClosed  = "closed"
	SlotStatusUnknown = "unknown"
)

// availability_snapshots
//
// Append-only: a snapshot is never updated. Corrections are written as a new
// row with a later snapshot_time for the same (court, date, start_time) key.
// The current value of a slot is the row with the maximum snapshot_time for
// that key.
type AvailabilitySnapshot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID uint `gorm:"not null;index;index:idx_snapshots_venue_date;index:idx_snapshots_venue_snapshot_time" json:"venue_id"`
	CourtID uint `gorm:"not null;index" json:"court_id"`

	// When the poll that produced this row happened (UTC).
	SnapshotTime time.Time `gorm:"not null;index;index:idx_snapshots_venue_snapshot_time" json:"snapshot_time"`

	// Calendar date the slot refers to, "2006-01-02".
	Date string `gorm:"not null;index;index:idx_snapshots_venue_date" json:"date"`

	// Slot bounds as "HH:MM".
	StartTime string `gorm:"not null" json:"start_time"`
	EndTime   string `gorm:"not null" json:"end_time"`

	Status string   `gorm:"not null" json:"status"`
	Price  *float64 `json:"price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
