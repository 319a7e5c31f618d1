package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"gorm.io/gorm"

	"court-monitor/models"
	"court-monitor/repository"
	services "court-monitor/service"
)

// MonitoringHandler exposes per-venue monitoring config CRUD and the
// process-wide scheduler lifecycle.
type MonitoringHandler struct {
	configRepo repository.MonitoringConfigRepository
	venueRepo  repository.VenueRepository
	scheduler  *services.MonitoringScheduler

	defaultFrequencyMinutes int
	defaultDaysAhead        int
}

func NewMonitoringHandler(
	configRepo repository.MonitoringConfigRepository,
	venueRepo repository.VenueRepository,
	scheduler *services.MonitoringScheduler,
	defaultFrequencyMinutes, defaultDaysAhead int,
) *MonitoringHandler {
	return &MonitoringHandler{
		configRepo:              configRepo,
		venueRepo:               venueRepo,
		scheduler:               scheduler,
		defaultFrequencyMinutes: defaultFrequencyMinutes,
		defaultDaysAhead:        defaultDaysAhead,
	}
}

type monitoringConfigBody struct {
	Enabled          *bool   `json:"enabled"`
	FrequencyMinutes *int    `json:"frequency_minutes"`
	StartTimeLocal   *string `json:"start_time_local"`
	EndTimeLocal     *string `json:"end_time_local"`
	DaysAhead        *int    `json:"days_ahead"`
}

func (h *MonitoringHandler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	if _, err := h.venueRepo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Venue not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load venue")
		return
	}

	if _, err := h.configRepo.GetByVenueID(r.Context(), id); err == nil {
		writeError(w, http.StatusBadRequest,
			"Monitoring config already exists for this venue. Use PATCH to update.")
		return
	}

	var body monitoringConfigBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	config := models.MonitoringConfig{
		VenueID:          id,
		FrequencyMinutes: h.defaultFrequencyMinutes,
		DaysAhead:        h.defaultDaysAhead,
	}
	applyConfigBody(&config, body)

	if detail := validateConfig(&config); detail != "" {
		writeError(w, http.StatusBadRequest, detail)
		return
	}

	if err := h.configRepo.Create(r.Context(), &config); err != nil {
		log.Println("Error creating monitoring config:", err)
		writeError(w, http.StatusInternalServerError, "Failed to create monitoring config")
		return
	}
	writeJSON(w, http.StatusCreated, config)
}

func (h *MonitoringHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	config, err := h.configRepo.GetByVenueID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "No monitoring config found for this venue")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load monitoring config")
		return
	}
	writeJSON(w, http.StatusOK, config)
}

func (h *MonitoringHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	config, err := h.configRepo.GetByVenueID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "No monitoring config found for this venue")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load monitoring config")
		return
	}

	var body monitoringConfigBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	applyConfigBody(config, body)

	if detail := validateConfig(config); detail != "" {
		writeError(w, http.StatusBadRequest, detail)
		return
	}

	if err := h.configRepo.Update(r.Context(), config); err != nil {
		log.Println("Error updating monitoring config:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update monitoring config")
		return
	}
	writeJSON(w, http.StatusOK, config)
}

func (h *MonitoringHandler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	config, err := h.configRepo.GetByVenueID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "No monitoring config found for this venue")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load monitoring config")
		return
	}

	if err := h.configRepo.Delete(r.Context(), config.ID); err != nil {
		log.Println("Error deleting monitoring config:", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete monitoring config")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MonitoringHandler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Start()
	writeJSON(w, http.StatusOK, map[string]bool{"running": h.scheduler.IsRunning()})
}

func (h *MonitoringHandler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Stop()
	writeJSON(w, http.StatusOK, map[string]bool{"running": h.scheduler.IsRunning()})
}

func (h *MonitoringHandler) SchedulerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"running": h.scheduler.IsRunning()})
}

func applyConfigBody(config *models.MonitoringConfig, body monitoringConfigBody) {
	if body.Enabled != nil {
		config.Enabled = *body.Enabled
	}
	if body.FrequencyMinutes != nil {
		config.FrequencyMinutes = *body.FrequencyMinutes
	}
	if body.StartTimeLocal != nil {
		config.StartTimeLocal = body.StartTimeLocal
	}
	if body.EndTimeLocal != nil {
		config.EndTimeLocal = body.EndTimeLocal
	}
	if body.DaysAhead != nil {
		config.DaysAhead = *body.DaysAhead
	}
}

// validateConfig enforces the write-time invariants: frequency 1-1440,
// days_ahead 1-30, window bounds both set or both unset and parseable.
func validateConfig(config *models.MonitoringConfig) string {
	if config.FrequencyMinutes < 1 || config.FrequencyMinutes > 1440 {
		return "frequency_minutes must be between 1 and 1440"
	}
	if config.DaysAhead < 1 || config.DaysAhead > 30 {
		return "days_ahead must be between 1 and 30"
	}
	if (config.StartTimeLocal == nil) != (config.EndTimeLocal == nil) {
		return "start_time_local and end_time_local must be set together"
	}
	for _, bound := range []*string{config.StartTimeLocal, config.EndTimeLocal} {
		if bound == nil {
			continue
		}
		if _, ok := services.MinutesOfDay(*bound); !ok {
			return fmt.Sprintf("invalid time %q, expected HH:MM", *bound)
		}
	}
	return ""
}
