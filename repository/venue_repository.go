package repository

import (
	"context"

	"gorm.io/gorm"

	"court-monitor/models"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id uint) (*models.Venue, error)
	GetByPlaytomicID(ctx context.Context, playtomicID string) (*models.Venue, error)
	GetBySlug(ctx context.Context, slug string) (*models.Venue, error)
	List(ctx context.Context, limit, offset int) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	// Delete removes the venue and cascades to its courts, snapshots and
	// monitoring config.
	Delete(ctx context.Context, id uint) error
}

type GormVenueRepository struct {
	db *gorm.DB
}

func NewGormVenueRepository(db *gorm.DB) *GormVenueRepository {
	return &GormVenueRepository{db: db}
}

func (r *GormVenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *GormVenueRepository) GetByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *GormVenueRepository) GetByPlaytomicID(ctx context.Context, playtomicID string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, "playtomic_id = ?", playtomicID).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *GormVenueRepository) GetBySlug(ctx context.Context, slug string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *GormVenueRepository) List(ctx context.Context, limit, offset int) ([]models.Venue, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var venues []models.Venue
	if err := q.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *GormVenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Model(&models.Venue{}).Where("id = ?", venue.ID).Updates(venue).Error
}

func (r *GormVenueRepository) Delete(ctx context.Context, id uint) error {
	// Explicit cascade inside one transaction; sqlite does not always
	// enforce the FK constraints declared on the model.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AvailabilitySnapshot{}, "venue_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Court{}, "venue_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.MonitoringConfig{}, "venue_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Venue{}, "id = ?", id).Error
	})
}
