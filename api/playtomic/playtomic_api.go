package playtomic

import "time"

// PlaytomicAPI defines the interface for interacting with the Playtomic API.
type PlaytomicAPI interface {
	SearchVenues(query string) ([]SearchResult, error)
	GetAvailability(playtomicID string, date time.Time) (*AvailabilityPayload, error)
	GetAvailabilityRange(playtomicID string, start time.Time, days int) ([]DayAvailability, error)
}
