package repository

import (
	"context"

	"gorm.io/gorm"

	"court-monitor/models"
)

type CourtRepository interface {
	// GetOrCreate resolves the court for (venueID, playtomicCourtID),
	// creating it with attrs on first sight. Idempotent per key.
	GetOrCreate(ctx context.Context, venueID uint, playtomicCourtID string, attrs models.Court) (*models.Court, error)
	ListByVenue(ctx context.Context, venueID uint) ([]models.Court, error)
}

type GormCourtRepository struct {
	db *gorm.DB
}

func NewGormCourtRepository(db *gorm.DB) *GormCourtRepository {
	return &GormCourtRepository{db: db}
}

func (r *GormCourtRepository) GetOrCreate(ctx context.Context, venueID uint, playtomicCourtID string, attrs models.Court) (*models.Court, error) {
	var court models.Court
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND playtomic_court_id = ?", venueID, playtomicCourtID).
		Attrs(attrs).
		FirstOrCreate(&court, models.Court{VenueID: venueID, PlaytomicCourtID: playtomicCourtID}).
		Error
	if err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *GormCourtRepository) ListByVenue(ctx context.Context, venueID uint) ([]models.Court, error) {
	var courts []models.Court
	if err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Order("id ASC").Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}
