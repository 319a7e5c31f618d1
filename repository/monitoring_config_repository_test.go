package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"court-monitor/models"
)

func strPtr(s string) *string { return &s }

func TestMonitoringConfigRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "tenant-a")
	repo := NewGormMonitoringConfigRepository(db)

	config := &models.MonitoringConfig{
		VenueID:          venue.ID,
		Enabled:          true,
		FrequencyMinutes: 30,
		StartTimeLocal:   strPtr("08:00"),
		EndTimeLocal:     strPtr("22:00"),
		DaysAhead:        7,
	}
	if err := repo.Create(context.Background(), config); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByVenueID(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("GetByVenueID: %v", err)
	}
	assert.Equal(t, 30, got.FrequencyMinutes)
	assert.Equal(t, "08:00", *got.StartTimeLocal)
	assert.Nil(t, got.LastRunAt)
}

func TestMonitoringConfigRepository_Update_WritesZeroValues(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "tenant-a")
	repo := NewGormMonitoringConfigRepository(db)

	config := &models.MonitoringConfig{
		VenueID:          venue.ID,
		Enabled:          true,
		FrequencyMinutes: 30,
		StartTimeLocal:   strPtr("08:00"),
		EndTimeLocal:     strPtr("22:00"),
		DaysAhead:        7,
	}
	if err := repo.Create(context.Background(), config); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Disabling and clearing the window must survive the update even though
	// both are zero values.
	config.Enabled = false
	config.StartTimeLocal = nil
	config.EndTimeLocal = nil
	if err := repo.Update(context.Background(), config); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByVenueID(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("GetByVenueID: %v", err)
	}
	assert.False(t, got.Enabled)
	assert.Nil(t, got.StartTimeLocal)
	assert.Nil(t, got.EndTimeLocal)
}

func TestMonitoringConfigRepository_ListEnabled(t *testing.T) {
	db := newTestDB(t)
	venueOn := seedVenue(t, db, "tenant-on")
	venueOff := seedVenue(t, db, "tenant-off")
	repo := NewGormMonitoringConfigRepository(db)

	for _, config := range []*models.MonitoringConfig{
		{VenueID: venueOn.ID, Enabled: true, FrequencyMinutes: 15, DaysAhead: 7},
		{VenueID: venueOff.ID, Enabled: false, FrequencyMinutes: 15, DaysAhead: 7},
	} {
		if err := repo.Create(context.Background(), config); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	configs, err := repo.ListEnabled(context.Background())
	if err != nil {
		t.Fatalf("ListEnabled: %v", err)
	}
	if len(configs) != 1 {
		t.Fatalf("Expected 1 enabled config, got %d", len(configs))
	}
	assert.Equal(t, venueOn.ID, configs[0].VenueID)
}

func TestMonitoringConfigRepository_UpdateLastRun(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "tenant-a")
	repo := NewGormMonitoringConfigRepository(db)

	config := &models.MonitoringConfig{VenueID: venue.ID, Enabled: true, FrequencyMinutes: 15, DaysAhead: 7}
	if err := repo.Create(context.Background(), config); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ranAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.UpdateLastRun(context.Background(), config.ID, ranAt); err != nil {
		t.Fatalf("UpdateLastRun: %v", err)
	}

	got, err := repo.GetByVenueID(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("GetByVenueID: %v", err)
	}
	if got.LastRunAt == nil || !got.LastRunAt.Equal(ranAt) {
		t.Errorf("Expected last_run_at %v, got %v", ranAt, got.LastRunAt)
	}
}
