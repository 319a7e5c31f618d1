package repository

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"court-monitor/models"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedVenue(t *testing.T, db *gorm.DB, playtomicID string) *models.Venue {
	t.Helper()

	venue := &models.Venue{
		PlaytomicID: playtomicID,
		Name:        "Test Club " + playtomicID,
		Timezone:    "UTC",
	}
	if err := db.Create(venue).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}
	return venue
}

func seedCourt(t *testing.T, db *gorm.DB, venueID uint, playtomicCourtID string) *models.Court {
	t.Helper()

	court := &models.Court{
		VenueID:          venueID,
		PlaytomicCourtID: playtomicCourtID,
		Name:             "Court " + playtomicCourtID,
	}
	if err := db.Create(court).Error; err != nil {
		t.Fatalf("seed court: %v", err)
	}
	return court
}
