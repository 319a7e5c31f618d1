package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// mockRoutes answers every registered route with 200 and its own name.
type mockRoutes struct{}

func (mockRoutes) reply(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(name))
	}
}

func (m mockRoutes) CreateVenue(w http.ResponseWriter, r *http.Request)  { m.reply("create_venue")(w, r) }
func (m mockRoutes) ListVenues(w http.ResponseWriter, r *http.Request)   { m.reply("list_venues")(w, r) }
func (m mockRoutes) GetVenue(w http.ResponseWriter, r *http.Request)     { m.reply("get_venue")(w, r) }
func (m mockRoutes) UpdateVenue(w http.ResponseWriter, r *http.Request)  { m.reply("update_venue")(w, r) }
func (m mockRoutes) DeleteVenue(w http.ResponseWriter, r *http.Request)  { m.reply("delete_venue")(w, r) }
func (m mockRoutes) SearchVenues(w http.ResponseWriter, r *http.Request) { m.reply("search_venues")(w, r) }
func (m mockRoutes) CreateVenueFromURL(w http.ResponseWriter, r *http.Request) {
	m.reply("create_venue_from_url")(w, r)
}

func (m mockRoutes) FetchAvailability(w http.ResponseWriter, r *http.Request) {
	m.reply("fetch_availability")(w, r)
}
func (m mockRoutes) GetCurrentUtilization(w http.ResponseWriter, r *http.Request) {
	m.reply("utilization_current")(w, r)
}
func (m mockRoutes) GetDailyUtilization(w http.ResponseWriter, r *http.Request) {
	m.reply("utilization_daily")(w, r)
}
func (m mockRoutes) GetUtilizationChart(w http.ResponseWriter, r *http.Request) {
	m.reply("utilization_chart")(w, r)
}

func (m mockRoutes) CreateConfig(w http.ResponseWriter, r *http.Request) { m.reply("create_config")(w, r) }
func (m mockRoutes) GetConfig(w http.ResponseWriter, r *http.Request)    { m.reply("get_config")(w, r) }
func (m mockRoutes) UpdateConfig(w http.ResponseWriter, r *http.Request) { m.reply("update_config")(w, r) }
func (m mockRoutes) DeleteConfig(w http.ResponseWriter, r *http.Request) { m.reply("delete_config")(w, r) }
func (m mockRoutes) StartScheduler(w http.ResponseWriter, r *http.Request) {
	m.reply("scheduler_start")(w, r)
}
func (m mockRoutes) StopScheduler(w http.ResponseWriter, r *http.Request) {
	m.reply("scheduler_stop")(w, r)
}
func (m mockRoutes) SchedulerStatus(w http.ResponseWriter, r *http.Request) {
	m.reply("scheduler_status")(w, r)
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	handlers := mockRoutes{}
	muxRouter := mux.NewRouter()
	appRouter := NewRouter(handlers, handlers, handlers, muxRouter)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Create Venue", "POST", "/v1/venues", http.StatusOK, "create_venue"},
		{"List Venues", "GET", "/v1/venues", http.StatusOK, "list_venues"},
		{"Get Venue", "GET", "/v1/venues/12", http.StatusOK, "get_venue"},
		{"Update Venue", "PATCH", "/v1/venues/12", http.StatusOK, "update_venue"},
		{"Delete Venue", "DELETE", "/v1/venues/12", http.StatusOK, "delete_venue"},
		{"Search Venues", "GET", "/v1/venues/search", http.StatusOK, "search_venues"},
		{"Venue From URL", "POST", "/v1/venues/from-url", http.StatusOK, "create_venue_from_url"},
		{"Fetch Availability", "POST", "/v1/venues/12/fetch-availability", http.StatusOK, "fetch_availability"},
		{"Current Utilization", "GET", "/v1/venues/12/utilization/current", http.StatusOK, "utilization_current"},
		{"Daily Utilization", "GET", "/v1/venues/12/utilization/daily", http.StatusOK, "utilization_daily"},
		{"Utilization Chart", "GET", "/v1/venues/12/utilization/chart", http.StatusOK, "utilization_chart"},
		{"Create Monitoring Config", "POST", "/v1/venues/12/monitoring", http.StatusOK, "create_config"},
		{"Get Monitoring Config", "GET", "/v1/venues/12/monitoring", http.StatusOK, "get_config"},
		{"Update Monitoring Config", "PATCH", "/v1/venues/12/monitoring", http.StatusOK, "update_config"},
		{"Delete Monitoring Config", "DELETE", "/v1/venues/12/monitoring", http.StatusOK, "delete_config"},
		{"Scheduler Start", "POST", "/v1/monitoring/scheduler/start", http.StatusOK, "scheduler_start"},
		{"Scheduler Stop", "POST", "/v1/monitoring/scheduler/stop", http.StatusOK, "scheduler_stop"},
		{"Scheduler Status", "GET", "/v1/monitoring/scheduler/status", http.StatusOK, "scheduler_status"},
		{"Ping Route", "GET", "/ping", http.StatusOK, `{"status":"pong"}` + "\n"},
		{"Non-numeric Venue ID", "GET", "/v1/venues/abc", http.StatusNotFound, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			muxRouter.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %q, got %q", test.response, rr.Body.String())
			}
		})
	}
}
