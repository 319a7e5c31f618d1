package models

import "gorm.io/gorm"

// AutoMigrate migrates every entity of the monitoring core.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Venue{},
		&Court{},
		&MonitoringConfig{},
		&AvailabilitySnapshot{},
	)
}
