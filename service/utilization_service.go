package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"gorm.io/gorm"

	redisdao "court-monitor/dao/redis"
	"court-monitor/models"
	"court-monitor/repository"
)

// UtilizationService derives booked/free/closed statistics from the snapshot
// history. For every (court, start_time) key only the most recent snapshot
// counts.
type UtilizationService struct {
	venueRepo    repository.VenueRepository
	snapshotRepo repository.SnapshotRepository
	statsCache   *redisdao.RedisStatsCache // optional
}

// NewUtilizationService constructs the aggregator. statsCache may be nil.
func NewUtilizationService(
	venueRepo repository.VenueRepository,
	snapshotRepo repository.SnapshotRepository,
	statsCache *redisdao.RedisStatsCache,
) *UtilizationService {
	return &UtilizationService{
		venueRepo:    venueRepo,
		snapshotRepo: snapshotRepo,
		statsCache:   statsCache,
	}
}

// CurrentUtilization computes today's utilization for a venue.
func (s *UtilizationService) CurrentUtilization(ctx context.Context, venueID uint) (*models.UtilizationCurrent, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrVenueNotFound, venueID)
		}
		return nil, err
	}

	date := time.Now().Format(dateFormat)

	if s.statsCache != nil {
		if cached, ok := s.statsCache.GetCurrentUtilization(venueID, date); ok {
			return cached, nil
		}
	}

	snapshots, err := s.snapshotRepo.LatestPerSlot(ctx, venueID, date)
	if err != nil {
		return nil, err
	}

	booked, free, closed := countStatuses(snapshots)
	total := len(snapshots)

	stats := &models.UtilizationCurrent{
		VenueID:          venue.ID,
		VenueName:        venue.Name,
		Date:             date,
		TotalSlots:       total,
		BookedSlots:      booked,
		FreeSlots:        free,
		ClosedSlots:      closed,
		BookedPercentage: percentage(booked, total),
		FreePercentage:   percentage(free, total),
	}

	if s.statsCache != nil {
		if err := s.statsCache.SetCurrentUtilization(stats); err != nil {
			log.Printf("[UtilizationService] Failed to cache stats for venue %d: %v", venueID, err)
		}
	}
	return stats, nil
}

// DailyUtilization computes utilization for every date in [from, to]
// inclusive. Dates without snapshots are omitted. Callers guarantee
// from <= to.
func (s *UtilizationService) DailyUtilization(ctx context.Context, venueID uint, from, to time.Time) ([]models.UtilizationDaily, error) {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrVenueNotFound, venueID)
		}
		return nil, err
	}

	var daily []models.UtilizationDaily
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateFormat)

		snapshots, err := s.snapshotRepo.LatestPerSlot(ctx, venueID, date)
		if err != nil {
			return nil, err
		}

		total := len(snapshots)
		if total == 0 {
			continue
		}

		booked, free, closed := countStatuses(snapshots)
		daily = append(daily, models.UtilizationDaily{
			Date:             date,
			TotalSlots:       total,
			BookedSlots:      booked,
			FreeSlots:        free,
			ClosedSlots:      closed,
			BookedPercentage: percentage(booked, total),
			FreePercentage:   percentage(free, total),
		})
	}
	return daily, nil
}

func countStatuses(snapshots []models.AvailabilitySnapshot) (booked, free, closed int) {
	for _, snap := range snapshots {
		switch snap.Status {
		case models.SlotStatusBooked:
			booked++
		case models.SlotStatusFree:
			free++
		case models.SlotStatusClosed:
			closed++
		}
	}
	return booked, free, closed
}

// percentage returns part/total*100 rounded to 2 decimals, 0 when total is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
