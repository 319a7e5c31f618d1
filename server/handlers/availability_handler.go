package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"

	"court-monitor/models"
	"court-monitor/repository"
	services "court-monitor/service"
	"court-monitor/util"
)

const (
	DAYS_QUERY_ARG      = "days"
	FROM_DATE_QUERY_ARG = "from_date"
	TO_DATE_QUERY_ARG   = "to_date"

	dateFormat = "2006-01-02"
)

// AvailabilityHandler exposes on-demand fetches and utilization reads.
type AvailabilityHandler struct {
	availability *services.AvailabilityService
	utilization  *services.UtilizationService
	venueRepo    repository.VenueRepository
}

func NewAvailabilityHandler(
	availability *services.AvailabilityService,
	utilization *services.UtilizationService,
	venueRepo repository.VenueRepository,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		utilization:  utilization,
		venueRepo:    venueRepo,
	}
}

func (h *AvailabilityHandler) FetchAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	days := 7
	if raw := r.URL.Query().Get(DAYS_QUERY_ARG); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 30 {
			writeError(w, http.StatusBadRequest, "days must be between 1 and 30")
			return
		}
		days = parsed
	}

	result, err := h.availability.FetchAndStore(r.Context(), id, days)
	if err != nil {
		if errors.Is(err, services.ErrVenueNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Println("Error fetching availability:", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *AvailabilityHandler) GetCurrentUtilization(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	stats, err := h.utilization.CurrentUtilization(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVenueNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Println("Error computing utilization:", err)
		writeError(w, http.StatusInternalServerError, "Failed to get utilization")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AvailabilityHandler) GetDailyUtilization(w http.ResponseWriter, r *http.Request) {
	history, status, errDetail := h.dailyHistory(r)
	if errDetail != "" {
		writeError(w, status, errDetail)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// GetUtilizationChart renders the daily history as an HTML bar chart.
func (h *AvailabilityHandler) GetUtilizationChart(w http.ResponseWriter, r *http.Request) {
	history, status, errDetail := h.dailyHistory(r)
	if errDetail != "" {
		writeError(w, status, errDetail)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderUtilizationHistoryChart(*history, w); err != nil {
		log.Println("Error rendering utilization chart:", err)
	}
}

// dailyHistory parses the date range, runs the aggregation and assembles the
// response. Returns an error detail + HTTP status when the request fails.
func (h *AvailabilityHandler) dailyHistory(r *http.Request) (*models.UtilizationHistory, int, string) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		return nil, http.StatusBadRequest, "Invalid venue id"
	}

	toDate := time.Now()
	if raw := r.URL.Query().Get(TO_DATE_QUERY_ARG); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			return nil, http.StatusBadRequest, "Invalid to_date, expected YYYY-MM-DD"
		}
		toDate = parsed
	}

	fromDate := toDate.AddDate(0, 0, -7)
	if raw := r.URL.Query().Get(FROM_DATE_QUERY_ARG); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			return nil, http.StatusBadRequest, "Invalid from_date, expected YYYY-MM-DD"
		}
		fromDate = parsed
	}

	if fromDate.After(toDate) {
		return nil, http.StatusBadRequest, "from_date must be before or equal to to_date"
	}

	venue, err := h.venueRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, "Venue not found"
		}
		return nil, http.StatusInternalServerError, "Failed to load venue"
	}

	daily, err := h.utilization.DailyUtilization(r.Context(), id, fromDate, toDate)
	if err != nil {
		log.Println("Error computing daily utilization:", err)
		return nil, http.StatusInternalServerError, "Failed to get utilization"
	}

	return &models.UtilizationHistory{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		FromDate:  fromDate.Format(dateFormat),
		ToDate:    toDate.Format(dateFormat),
		DailyData: daily,
	}, 0, ""
}
