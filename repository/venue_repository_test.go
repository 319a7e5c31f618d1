package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"court-monitor/models"
)

func TestVenueRepository_GetByPlaytomicID(t *testing.T) {
	db := newTestDB(t)
	seedVenue(t, db, "tenant-a")
	repo := NewGormVenueRepository(db)

	venue, err := repo.GetByPlaytomicID(context.Background(), "tenant-a")
	if err != nil {
		t.Fatalf("GetByPlaytomicID: %v", err)
	}
	if venue.PlaytomicID != "tenant-a" {
		t.Errorf("Expected tenant-a, got %s", venue.PlaytomicID)
	}

	if _, err := repo.GetByPlaytomicID(context.Background(), "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestVenueRepository_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "tenant-a")
	court := seedCourt(t, db, venue.ID, "court-1")
	repo := NewGormVenueRepository(db)

	if err := db.Create(&models.MonitoringConfig{VenueID: venue.ID, FrequencyMinutes: 15, DaysAhead: 7}).Error; err != nil {
		t.Fatalf("seed config: %v", err)
	}
	if err := db.Create(&models.AvailabilitySnapshot{
		VenueID: venue.ID, CourtID: court.ID,
		SnapshotTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Date:         "2025-06-01", StartTime: "08:00", EndTime: "09:00",
		Status: models.SlotStatusFree,
	}).Error; err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	if err := repo.Delete(context.Background(), venue.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for name, model := range map[string]interface{}{
		"venues":                 &models.Venue{},
		"courts":                 &models.Court{},
		"monitoring_configs":     &models.MonitoringConfig{},
		"availability_snapshots": &models.AvailabilitySnapshot{},
	} {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if count != 0 {
			t.Errorf("Expected %s to be empty after delete, got %d rows", name, count)
		}
	}
}

func TestVenueRepository_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	for _, id := range []string{"tenant-a", "tenant-b", "tenant-c"} {
		seedVenue(t, db, id)
	}
	repo := NewGormVenueRepository(db)

	venues, err := repo.List(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("Expected 2 venues, got %d", len(venues))
	}
	if venues[0].PlaytomicID != "tenant-b" {
		t.Errorf("Expected offset to skip tenant-a, got %s first", venues[0].PlaytomicID)
	}
}

func TestCourtRepository_GetOrCreate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "tenant-a")
	repo := NewGormCourtRepository(db)

	sport := "padel"
	first, err := repo.GetOrCreate(context.Background(), venue.ID, "court-1", models.Court{
		Name:      "Center Court",
		SportType: &sport,
	})
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	second, err := repo.GetOrCreate(context.Background(), venue.ID, "court-1", models.Court{
		Name: "Renamed Court",
	})
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("Expected the same court, got ids %d and %d", first.ID, second.ID)
	}
	if second.Name != "Center Court" {
		t.Errorf("Attrs must not overwrite an existing court, got name %q", second.Name)
	}

	courts, err := repo.ListByVenue(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("ListByVenue: %v", err)
	}
	if len(courts) != 1 {
		t.Errorf("Expected 1 court, got %d", len(courts))
	}
}
