package repository

import (
	"context"

	"gorm.io/gorm"

	"court-monitor/models"
)

type SnapshotRepository interface {
	// Create appends one snapshot row. Snapshots are never updated.
	Create(ctx context.Context, snapshot *models.AvailabilitySnapshot) error
	// LatestPerSlot returns, for each (court, start_time) key of the given
	// venue and date, the snapshot with the maximum snapshot_time. Ties on
	// snapshot_time resolve to the highest row id.
	LatestPerSlot(ctx context.Context, venueID uint, date string) ([]models.AvailabilitySnapshot, error)
}

type GormSnapshotRepository struct {
	db *gorm.DB
}

func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

func (r *GormSnapshotRepository) Create(ctx context.Context, snapshot *models.AvailabilitySnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *GormSnapshotRepository) LatestPerSlot(ctx context.Context, venueID uint, date string) ([]models.AvailabilitySnapshot, error) {
	latest := r.db.Model(&models.AvailabilitySnapshot{}).
		Select("court_id, start_time, MAX(snapshot_time) AS max_snapshot_time").
		Where("venue_id = ? AND date = ?", venueID, date).
		Group("court_id, start_time")

	var rows []models.AvailabilitySnapshot
	err := r.db.WithContext(ctx).
		Model(&models.AvailabilitySnapshot{}).
		Joins(
			"JOIN (?) latest ON availability_snapshots.court_id = latest.court_id"+
				" AND availability_snapshots.start_time = latest.start_time"+
				" AND availability_snapshots.snapshot_time = latest.max_snapshot_time",
			latest,
		).
		Where("availability_snapshots.venue_id = ? AND availability_snapshots.date = ?", venueID, date).
		Order("availability_snapshots.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// The join can return more than one row per key when several snapshots
	// share the identical max snapshot_time. Keep the highest id.
	type slotKey struct {
		courtID   uint
		startTime string
	}
	byKey := make(map[slotKey]models.AvailabilitySnapshot, len(rows))
	var order []slotKey
	for _, row := range rows {
		key := slotKey{row.CourtID, row.StartTime}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = row // rows come id ASC, so the last write wins
	}

	out := make([]models.AvailabilitySnapshot, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out, nil
}
