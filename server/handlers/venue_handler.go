package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"court-monitor/api/playtomic"
	"court-monitor/models"
	"court-monitor/repository"
)

const (
	SKIP_QUERY_ARG  = "skip"
	LIMIT_QUERY_ARG = "limit"
	QUERY_QUERY_ARG = "query"
)

var clubURLPattern = regexp.MustCompile(`playtomic\.com/clubs/([a-zA-Z0-9\-_]+)`)

// VenueHandler exposes venue CRUD plus the Playtomic search/from-url
// conveniences.
type VenueHandler struct {
	venueRepo    repository.VenueRepository
	playtomicAPI playtomic.PlaytomicAPI
}

func NewVenueHandler(venueRepo repository.VenueRepository, playtomicAPI playtomic.PlaytomicAPI) *VenueHandler {
	return &VenueHandler{venueRepo: venueRepo, playtomicAPI: playtomicAPI}
}

func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if venue.PlaytomicID == "" || venue.Name == "" {
		writeError(w, http.StatusBadRequest, "playtomic_id and name are required")
		return
	}
	if venue.Timezone == "" {
		venue.Timezone = "UTC"
	}

	if existing, err := h.venueRepo.GetByPlaytomicID(r.Context(), venue.PlaytomicID); err == nil {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Venue with playtomic_id %s already exists (ID: %d)", venue.PlaytomicID, existing.ID))
		return
	}

	venue.ID = 0
	if err := h.venueRepo.Create(r.Context(), &venue); err != nil {
		log.Println("Error creating venue:", err)
		writeError(w, http.StatusInternalServerError, "Failed to create venue")
		return
	}
	writeJSON(w, http.StatusCreated, venue)
}

func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get(SKIP_QUERY_ARG))
	limit, err := strconv.Atoi(r.URL.Query().Get(LIMIT_QUERY_ARG))
	if err != nil || limit <= 0 {
		limit = 100
	}

	venues, err := h.venueRepo.List(r.Context(), limit, skip)
	if err != nil {
		log.Println("Error listing venues:", err)
		writeError(w, http.StatusInternalServerError, "Failed to list venues")
		return
	}
	writeJSON(w, http.StatusOK, venues)
}

func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	venue, err := h.venueRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Venue not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load venue")
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

// venueUpdate carries the PATCHable venue fields; absent fields stay as-is.
type venueUpdate struct {
	Name           *string         `json:"name"`
	Slug           *string         `json:"slug"`
	Address        *string         `json:"address"`
	City           *string         `json:"city"`
	Country        *string         `json:"country"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	Timezone       *string         `json:"timezone"`
	OperatingHours json.RawMessage `json:"operating_hours"`
}

func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid venue id")
		return
	}

	venue, err := h.venueRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Venue not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load venue")
		return
	}

	var update venueUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if update.Name != nil {
		venue.Name = *update.Name
	}
	if update.Slug != nil {
		venue.Slug = update.Slug
	}
	if update.Address != nil {
		venue.Address = update.Address
	}
	if update.City != nil {
		venue.City = update.City
	}
	if update.Country != nil {
		venue.Country = update.Country
	}
	if update.Latitude != nil {
		venue.Latitude = update.Latitude
	}
	if update.Longitude != nil {
		venue.Longitude = update.Longitude
	}
	if update.Timezone != nil {
		venue.Timezone = *update.Timezone
	}
	if len(update.OperatingHours) > 0 {
		venue.OperatingHours = datatypes.JSON(update.OperatingHours)
	}

	if err := h.venueRepo.Update(r.Context(), venue); err != nil {
		log.Println("Error updating venue:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update venue")
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
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

	if err := h.venueRepo.Delete(r.Context(), id); err != nil {
		log.Println("Error deleting venue:", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete venue")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(QUERY_QUERY_ARG)
	if len(query) < 2 {
		writeError(w, http.StatusBadRequest, "query must be at least 2 characters")
		return
	}

	results, err := h.playtomicAPI.SearchVenues(query)
	if err != nil {
		log.Println("Error searching venues:", err)
		writeError(w, http.StatusInternalServerError, "Failed to search venues")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

type venueFromURL struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// CreateVenueFromURL registers a venue from a pasted playtomic.com club URL.
// The slug doubles as the playtomic_id until the real tenant id is known.
func (h *VenueHandler) CreateVenueFromURL(w http.ResponseWriter, r *http.Request) {
	var body venueFromURL
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match := clubURLPattern.FindStringSubmatch(body.URL)
	if match == nil {
		writeError(w, http.StatusBadRequest,
			"Invalid Playtomic URL. Expected format: https://playtomic.com/clubs/club-slug")
		return
	}
	slug := match[1]

	if existing, err := h.venueRepo.GetBySlug(r.Context(), slug); err == nil {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Venue with slug %q already exists (ID: %d)", slug, existing.ID))
		return
	}

	name := body.Name
	if name == "" {
		name = strings.Title(strings.ReplaceAll(slug, "-", " "))
	}

	venue := models.Venue{
		PlaytomicID: slug,
		Slug:        &slug,
		Name:        name,
		Timezone:    "Europe/Berlin",
	}
	if err := h.venueRepo.Create(r.Context(), &venue); err != nil {
		log.Println("Error creating venue from URL:", err)
		writeError(w, http.StatusInternalServerError, "Failed to create venue")
		return
	}
	writeJSON(w, http.StatusCreated, venue)
}
