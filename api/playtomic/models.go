package playtomic

import "time"

// SearchResult is one venue entry from the tenant search endpoint.
type SearchResult struct {
	PlaytomicID string   `json:"tenant_id"`
	Name        string   `json:"tenant_name"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// RawSlot is one bookable interval as reported by Playtomic.
type RawSlot struct {
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Available bool     `json:"available"`
	Closed    bool     `json:"closed"`
	Price     *float64 `json:"price,omitempty"`
}

// RawCourt is one court with its slots for a single date.
type RawCourt struct {
	CourtID     string    `json:"court_id"`
	CourtName   string    `json:"court_name"`
	SportType   *string   `json:"sport_type,omitempty"`
	SurfaceType *string   `json:"surface_type,omitempty"`
	Slots       []RawSlot `json:"slots"`
}

// AvailabilityPayload is the per-date availability document.
type AvailabilityPayload struct {
	Courts []RawCourt `json:"courts"`
}

// DayAvailability pairs a date with the payload fetched for it.
type DayAvailability struct {
	Date time.Time
	Data *AvailabilityPayload
}
