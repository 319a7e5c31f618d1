package playtomic

import (
	"fmt"
	"time"
)

// PlaytomicApiClientMock serves canned availability so the rest of the app
// can run without touching the real API.
type PlaytomicApiClientMock struct {
}

// NewPlaytomicApiClientMock creates a new instance of PlaytomicApiClientMock.
func NewPlaytomicApiClientMock() *PlaytomicApiClientMock {
	return &PlaytomicApiClientMock{}
}

func (c *PlaytomicApiClientMock) SearchVenues(query string) ([]SearchResult, error) {
	city := "Berlin"
	country := "Germany"
	return []SearchResult{
		{
			PlaytomicID: "mock-tenant-1",
			Name:        "Mock Padel " + query,
			City:        &city,
			Country:     &country,
		},
	}, nil
}

func (c *PlaytomicApiClientMock) GetAvailability(playtomicID string, date time.Time) (*AvailabilityPayload, error) {
	price := 25.0
	payload := &AvailabilityPayload{}
	for i := 1; i <= 2; i++ {
		court := RawCourt{
			CourtID:   fmt.Sprintf("court_%d", i),
			CourtName: fmt.Sprintf("Court %d", i),
		}
		for hour := 8; hour < 12; hour++ {
			court.Slots = append(court.Slots, RawSlot{
				StartTime: fmt.Sprintf("%02d:00", hour),
				EndTime:   fmt.Sprintf("%02d:30", hour+1),
				Available: hour%2 == 0,
				Price:     &price,
			})
		}
		payload.Courts = append(payload.Courts, court)
	}
	return payload, nil
}

func (c *PlaytomicApiClientMock) GetAvailabilityRange(playtomicID string, start time.Time, days int) ([]DayAvailability, error) {
	var results []DayAvailability
	for offset := 0; offset < days; offset++ {
		targetDate := start.AddDate(0, 0, offset)
		data, err := c.GetAvailability(playtomicID, targetDate)
		if err != nil {
			continue
		}
		results = append(results, DayAvailability{Date: targetDate, Data: data})
	}
	return results, nil
}
