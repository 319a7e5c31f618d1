package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"court-monitor/api/playtomic"
	redisdao "court-monitor/dao/redis"
	"court-monitor/models"
	"court-monitor/repository"
)

// ErrVenueNotFound reports an unknown internal venue id.
var ErrVenueNotFound = errors.New("venue not found")

const dateFormat = "2006-01-02"

// AvailabilityService fetches availability from Playtomic and appends one
// snapshot row per observed slot.
type AvailabilityService struct {
	db           *gorm.DB
	venueRepo    repository.VenueRepository
	playtomicAPI playtomic.PlaytomicAPI
	statsCache   *redisdao.RedisStatsCache // optional
}

// NewAvailabilityService constructs the collector. statsCache may be nil.
func NewAvailabilityService(
	db *gorm.DB,
	venueRepo repository.VenueRepository,
	playtomicAPI playtomic.PlaytomicAPI,
	statsCache *redisdao.RedisStatsCache,
) *AvailabilityService {
	return &AvailabilityService{
		db:           db,
		venueRepo:    venueRepo,
		playtomicAPI: playtomicAPI,
		statsCache:   statsCache,
	}
}

// FetchAndStore fetches days of availability starting today, stores one
// snapshot per slot under a single observation timestamp and returns the
// normalized slot list. Courts unseen so far are created in the same
// transaction as their snapshots.
func (s *AvailabilityService) FetchAndStore(ctx context.Context, venueID uint, days int) (*models.AvailabilityResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrVenueNotFound, venueID)
		}
		return nil, err
	}

	log.Printf("[AvailabilityService] Fetching availability for venue %q (%d)", venue.Name, venueID)

	// Day range starts at the server's local "today"; see DESIGN.md on the
	// venue-local day boundary question.
	today := time.Now()
	dayResults, err := s.playtomicAPI.GetAvailabilityRange(venue.PlaytomicID, today, days)
	if err != nil {
		return nil, fmt.Errorf("availability range for %s: %w", venue.PlaytomicID, err)
	}

	snapshotTime := time.Now().UTC()

	var allSlots []models.AvailabilitySlot
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courtRepo := repository.NewGormCourtRepository(tx)
		snapshotRepo := repository.NewGormSnapshotRepository(tx)

		for _, day := range dayResults {
			slots, err := s.storeDay(ctx, courtRepo, snapshotRepo, venue, day, snapshotTime)
			if err != nil {
				return err
			}
			allSlots = append(allSlots, slots...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.statsCache != nil {
		s.statsCache.InvalidateCurrentUtilization(venueID, today.Format(dateFormat))
	}

	log.Printf("[AvailabilityService] Stored %d slots for venue %q", len(allSlots), venue.Name)
	return &models.AvailabilityResponse{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		FetchTime: snapshotTime,
		Slots:     allSlots,
	}, nil
}

func (s *AvailabilityService) storeDay(
	ctx context.Context,
	courtRepo repository.CourtRepository,
	snapshotRepo repository.SnapshotRepository,
	venue *models.Venue,
	day playtomic.DayAvailability,
	snapshotTime time.Time,
) ([]models.AvailabilitySlot, error) {
	date := day.Date.Format(dateFormat)

	var slots []models.AvailabilitySlot
	for _, rawCourt := range day.Data.Courts {
		court, err := courtRepo.GetOrCreate(ctx, venue.ID, rawCourt.CourtID, models.Court{
			Name:        rawCourt.CourtName,
			SportType:   rawCourt.SportType,
			SurfaceType: rawCourt.SurfaceType,
		})
		if err != nil {
			return nil, fmt.Errorf("court %s: %w", rawCourt.CourtID, err)
		}

		for _, rawSlot := range rawCourt.Slots {
			startTime := parseSlotTime(rawSlot.StartTime)
			endTime := parseSlotTime(rawSlot.EndTime)
			status := slotStatus(rawSlot)

			snapshot := models.AvailabilitySnapshot{
				VenueID:      venue.ID,
				CourtID:      court.ID,
				SnapshotTime: snapshotTime,
				Date:         date,
				StartTime:    startTime,
				EndTime:      endTime,
				Status:       status,
				Price:        rawSlot.Price,
			}
			if err := snapshotRepo.Create(ctx, &snapshot); err != nil {
				return nil, fmt.Errorf("snapshot %s %s: %w", date, startTime, err)
			}

			slots = append(slots, models.AvailabilitySlot{
				CourtID:   court.ID,
				CourtName: court.Name,
				Date:      date,
				StartTime: startTime,
				EndTime:   endTime,
				Status:    status,
				Price:     rawSlot.Price,
			})
		}
	}
	return slots, nil
}

func slotStatus(slot playtomic.RawSlot) string {
	if slot.Closed {
		return models.SlotStatusClosed
	}
	if slot.Available {
		return models.SlotStatusFree
	}
	return models.SlotStatusBooked
}

// parseSlotTime normalizes "H" and "H:M" forms to "HH:MM". Malformed input
// is logged and coerced to "00:00" instead of failing the whole fetch.
func parseSlotTime(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), ":")

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		log.Printf("[AvailabilityService] Failed to parse time %q, using 00:00", raw)
		return "00:00"
	}

	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil || minute < 0 || minute > 59 {
			log.Printf("[AvailabilityService] Failed to parse time %q, using 00:00", raw)
			return "00:00"
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}
