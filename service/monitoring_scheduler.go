package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"court-monitor/config"
	"court-monitor/models"
	"court-monitor/repository"
)

// Collector is the part of the availability service the scheduler needs.
type Collector interface {
	FetchAndStore(ctx context.Context, venueID uint, days int) (*models.AvailabilityResponse, error)
}

// MonitoringScheduler drives the recurring monitoring loop: every tick it
// evaluates all enabled configs against their venue-local window and
// frequency and triggers a collect for the due ones.
type MonitoringScheduler struct {
	configRepo repository.MonitoringConfigRepository
	venueRepo  repository.VenueRepository
	collector  Collector

	tickPeriod time.Duration
	now        func() time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// NewMonitoringScheduler constructs the scheduler with its dependencies.
func NewMonitoringScheduler(
	configRepo repository.MonitoringConfigRepository,
	venueRepo repository.VenueRepository,
	collector Collector,
) *MonitoringScheduler {
	return &MonitoringScheduler{
		configRepo: configRepo,
		venueRepo:  venueRepo,
		collector:  collector,
		tickPeriod: config.SCHEDULER_TICK_MINUTES * time.Minute,
		now:        time.Now,
	}
}

// Start launches the tick loop. Calling Start while running is a no-op.
func (s *MonitoringScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		log.Println("[MonitoringScheduler] Scheduler is already running")
		return
	}

	s.stopCh = make(chan struct{})
	s.running = true
	go s.run(s.stopCh)
	log.Println("[MonitoringScheduler] Monitoring scheduler started")
}

// Stop cancels future ticks. It does not wait for an in-flight tick, so one
// tick may still be completing after Stop returns.
func (s *MonitoringScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	close(s.stopCh)
	s.running = false
	log.Println("[MonitoringScheduler] Monitoring scheduler stopped")
}

// IsRunning reports whether the tick loop is active.
func (s *MonitoringScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *MonitoringScheduler) run(stop chan struct{}) {
	ticker := time.NewTicker(s.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.CheckAndMonitor(context.Background())
		}
	}
}

// CheckAndMonitor evaluates every enabled config once. A failure in one
// config is logged and does not abort the others.
func (s *MonitoringScheduler) CheckAndMonitor(ctx context.Context) {
	configs, err := s.configRepo.ListEnabled(ctx)
	if err != nil {
		log.Printf("[MonitoringScheduler] Error listing enabled configs: %v", err)
		return
	}

	log.Printf("[MonitoringScheduler] Found %d enabled monitoring configs", len(configs))
	for i := range configs {
		if err := s.processConfig(ctx, &configs[i]); err != nil {
			log.Printf("[MonitoringScheduler] Failed to process monitoring for venue %d: %v",
				configs[i].VenueID, err)
		}
	}
}

func (s *MonitoringScheduler) processConfig(ctx context.Context, cfg *models.MonitoringConfig) error {
	venue, err := s.venueRepo.GetByID(ctx, cfg.VenueID)
	if err != nil {
		return fmt.Errorf("load venue %d: %w", cfg.VenueID, err)
	}

	nowUTC := s.now().UTC()
	localNow := nowUTC.In(venueLocation(venue.Timezone))

	if !withinWindow(localNow, cfg.StartTimeLocal, cfg.EndTimeLocal) {
		return nil
	}
	if !isDue(cfg, nowUTC) {
		return nil
	}

	log.Printf("[MonitoringScheduler] Running monitoring for venue %q (%d)", venue.Name, cfg.VenueID)

	if _, err := s.collector.FetchAndStore(ctx, cfg.VenueID, cfg.DaysAhead); err != nil {
		// last_run_at stays untouched so the next due tick retries.
		return fmt.Errorf("fetch availability: %w", err)
	}

	if err := s.configRepo.UpdateLastRun(ctx, cfg.ID, nowUTC); err != nil {
		return fmt.Errorf("update last_run_at: %w", err)
	}

	log.Printf("[MonitoringScheduler] Completed monitoring for venue %q (%d)", venue.Name, cfg.VenueID)
	return nil
}

// withinWindow tests the venue-local time-of-day against [start, end]. A null
// window is always inside; start > end means the window crosses midnight.
func withinWindow(localNow time.Time, start, end *string) bool {
	if start == nil || end == nil {
		return true
	}

	startMin, okStart := MinutesOfDay(*start)
	endMin, okEnd := MinutesOfDay(*end)
	if !okStart || !okEnd {
		// Window bounds are validated at write time; treat leftovers as open.
		return true
	}

	cur := localNow.Hour()*60 + localNow.Minute()
	if startMin <= endMin {
		return startMin <= cur && cur <= endMin
	}
	return cur >= startMin || cur <= endMin
}

// isDue reports whether enough time has passed since the last successful run.
func isDue(cfg *models.MonitoringConfig, nowUTC time.Time) bool {
	if cfg.LastRunAt == nil {
		return true
	}
	return nowUTC.Sub(*cfg.LastRunAt) >= time.Duration(cfg.FrequencyMinutes)*time.Minute
}

func venueLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Printf("[MonitoringScheduler] Unknown timezone %q, falling back to UTC", timezone)
		return time.UTC
	}
	return loc
}

// MinutesOfDay parses "HH:MM" into minutes since midnight.
func MinutesOfDay(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
