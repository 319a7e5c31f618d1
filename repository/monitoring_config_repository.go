package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"court-monitor/models"
)

type MonitoringConfigRepository interface {
	Create(ctx context.Context, config *models.MonitoringConfig) error
	GetByVenueID(ctx context.Context, venueID uint) (*models.MonitoringConfig, error)
	ListEnabled(ctx context.Context) ([]models.MonitoringConfig, error)
	Update(ctx context.Context, config *models.MonitoringConfig) error
	// UpdateLastRun advances last_run_at after a fully successful collect.
	UpdateLastRun(ctx context.Context, id uint, ranAt time.Time) error
	Delete(ctx context.Context, id uint) error
}

type GormMonitoringConfigRepository struct {
	db *gorm.DB
}

func NewGormMonitoringConfigRepository(db *gorm.DB) *GormMonitoringConfigRepository {
	return &GormMonitoringConfigRepository{db: db}
}

func (r *GormMonitoringConfigRepository) Create(ctx context.Context, config *models.MonitoringConfig) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *GormMonitoringConfigRepository) GetByVenueID(ctx context.Context, venueID uint) (*models.MonitoringConfig, error) {
	var config models.MonitoringConfig
	if err := r.db.WithContext(ctx).First(&config, "venue_id = ?", venueID).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *GormMonitoringConfigRepository) ListEnabled(ctx context.Context) ([]models.MonitoringConfig, error) {
	var configs []models.MonitoringConfig
	if err := r.db.WithContext(ctx).Where("enabled = ?", true).Order("id ASC").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *GormMonitoringConfigRepository) Update(ctx context.Context, config *models.MonitoringConfig) error {
	// Select all mutable columns so false/null values are written too.
	return r.db.WithContext(ctx).
		Model(&models.MonitoringConfig{}).
		Where("id = ?", config.ID).
		Select("enabled", "frequency_minutes", "start_time_local", "end_time_local", "days_ahead").
		Updates(config).Error
}

func (r *GormMonitoringConfigRepository) UpdateLastRun(ctx context.Context, id uint, ranAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.MonitoringConfig{}).
		Where("id = ?", id).
		Update("last_run_at", ranAt).
		Error
}

func (r *GormMonitoringConfigRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MonitoringConfig{}, "id = ?", id).Error
}
