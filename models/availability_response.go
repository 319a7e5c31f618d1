package models

import "time"

// AvailabilitySlot is one normalized slot as returned by a fetch.
type AvailabilitySlot struct {
	CourtID   uint     `json:"court_id"`
	CourtName string   `json:"court_name"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Status    string   `json:"status"`
	Price     *float64 `json:"price,omitempty"`
}

// AvailabilityResponse is the result of a fetch-and-store run for one venue.
type AvailabilityResponse struct {
	VenueID   uint               `json:"venue_id"`
	VenueName string             `json:"venue_name"`
	FetchTime time.Time          `json:"fetch_time"`
	Slots     []AvailabilitySlot `json:"slots"`
}

// UtilizationCurrent is today's point-in-time utilization for a venue.
type UtilizationCurrent struct {
	VenueID          uint    `json:"venue_id"`
	VenueName        string  `json:"venue_name"`
	Date             string  `json:"date"`
	TotalSlots       int     `json:"total_slots"`
	BookedSlots      int     `json:"booked_slots"`
	FreeSlots        int     `json:"free_slots"`
	ClosedSlots      int     `json:"closed_slots"`
	BookedPercentage float64 `json:"booked_percentage"`
	FreePercentage   float64 `json:"free_percentage"`
}

// UtilizationDaily is the utilization of one calendar day.
type UtilizationDaily struct {
	Date             string  `json:"date"`
	TotalSlots       int     `json:"total_slots"`
	BookedSlots      int     `json:"booked_slots"`
	FreeSlots        int     `json:"free_slots"`
	ClosedSlots      int     `json:"closed_slots"`
	BookedPercentage float64 `json:"booked_percentage"`
	FreePercentage   float64 `json:"free_percentage"`
}

// UtilizationHistory wraps the per-day series for a date range.
type UtilizationHistory struct {
	VenueID   uint               `json:"venue_id"`
	VenueName string             `json:"venue_name"`
	FromDate  string             `json:"from_date"`
	ToDate    string             `json:"to_date"`
	DailyData []UtilizationDaily `json:"daily_data"`
}
