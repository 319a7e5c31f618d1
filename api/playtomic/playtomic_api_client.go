package playtomic

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"court-monitor/api"
)

const dateFormat = "2006-01-02"

// PlaytomicApiClient embeds the common HTTPClient, so every call goes
// through its shared politeness gate and retry logic.
type PlaytomicApiClient struct {
	*api.HTTPClient
}

// NewPlaytomicApiClient creates a new instance of PlaytomicApiClient.
func NewPlaytomicApiClient(httpClient *api.HTTPClient) *PlaytomicApiClient {
	return &PlaytomicApiClient{
		HTTPClient: httpClient,
	}
}

// SearchVenues searches the tenant directory by name.
func (c *PlaytomicApiClient) SearchVenues(query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("sport", "PADEL")

	var response searchResponse
	if err := c.Request("GET", "/tenants/search", params, nil, &response); err != nil {
		return nil, err
	}
	log.Printf("[PlaytomicApiClient] Found %d venues for query %q", len(response.Results), query)
	return response.Results, nil
}

// GetAvailability fetches the per-court slot document for one venue and date.
func (c *PlaytomicApiClient) GetAvailability(playtomicID string, date time.Time) (*AvailabilityPayload, error) {
	endpoint := fmt.Sprintf("/availability/%s/%s", playtomicID, date.Format(dateFormat))

	var response AvailabilityPayload
	if err := c.Request("GET", endpoint, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAvailabilityRange issues one GetAvailability per day, sequentially. A
// failed date is logged and skipped; the remaining dates are still fetched,
// so the result can hold fewer than days entries.
func (c *PlaytomicApiClient) GetAvailabilityRange(playtomicID string, start time.Time, days int) ([]DayAvailability, error) {
	log.Printf("[PlaytomicApiClient] Fetching availability range for %s: %s + %d days",
		playtomicID, start.Format(dateFormat), days)

	var results []DayAvailability
	for offset := 0; offset < days; offset++ {
		targetDate := start.AddDate(0, 0, offset)

		data, err := c.GetAvailability(playtomicID, targetDate)
		if err != nil {
			log.Printf("[PlaytomicApiClient] Failed to fetch availability for %s: %v",
				targetDate.Format(dateFormat), err)
			continue
		}
		results = append(results, DayAvailability{Date: targetDate, Data: data})
	}
	return results, nil
}
