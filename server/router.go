package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes is the venue CRUD surface the router wires up.
type VenueRoutes interface {
	CreateVenue(w http.ResponseWriter, r *http.Request)
	ListVenues(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	UpdateVenue(w http.ResponseWriter, r *http.Request)
	DeleteVenue(w http.ResponseWriter, r *http.Request)
	SearchVenues(w http.ResponseWriter, r *http.Request)
	CreateVenueFromURL(w http.ResponseWriter, r *http.Request)
}

// AvailabilityRoutes covers fetch and utilization reads.
type AvailabilityRoutes interface {
	FetchAvailability(w http.ResponseWriter, r *http.Request)
	GetCurrentUtilization(w http.ResponseWriter, r *http.Request)
	GetDailyUtilization(w http.ResponseWriter, r *http.Request)
	GetUtilizationChart(w http.ResponseWriter, r *http.Request)
}

// MonitoringRoutes covers config CRUD and the scheduler lifecycle.
type MonitoringRoutes interface {
	CreateConfig(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
	DeleteConfig(w http.ResponseWriter, r *http.Request)
	StartScheduler(w http.ResponseWriter, r *http.Request)
	StopScheduler(w http.ResponseWriter, r *http.Request)
	SchedulerStatus(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler        VenueRoutes
	availabilityHandler AvailabilityRoutes
	monitoringHandler   MonitoringRoutes
	router              *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueRoutes,
	availabilityHandler AvailabilityRoutes,
	monitoringHandler MonitoringRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:        venueHandler,
		availabilityHandler: availabilityHandler,
		monitoringHandler:   monitoringHandler,
		router:              router,
	}
}

func (r *Router) RegisterRoutes() {
	// Static venue routes must be registered before /{id}.
	r.router.HandleFunc("/v1/venues/search", r.venueHandler.SearchVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/from-url", r.venueHandler.CreateVenueFromURL).Methods("POST")

	r.router.HandleFunc("/v1/venues", r.venueHandler.CreateVenue).Methods("POST")
	r.router.HandleFunc("/v1/venues", r.venueHandler.ListVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}", r.venueHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}", r.venueHandler.UpdateVenue).Methods("PATCH")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}", r.venueHandler.DeleteVenue).Methods("DELETE")

	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/fetch-availability", r.availabilityHandler.FetchAvailability).Methods("POST")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/utilization/current", r.availabilityHandler.GetCurrentUtilization).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/utilization/daily", r.availabilityHandler.GetDailyUtilization).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/utilization/chart", r.availabilityHandler.GetUtilizationChart).Methods("GET")

	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/monitoring", r.monitoringHandler.CreateConfig).Methods("POST")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/monitoring", r.monitoringHandler.GetConfig).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/monitoring", r.monitoringHandler.UpdateConfig).Methods("PATCH")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/monitoring", r.monitoringHandler.DeleteConfig).Methods("DELETE")

	r.router.HandleFunc("/v1/monitoring/scheduler/start", r.monitoringHandler.StartScheduler).Methods("POST")
	r.router.HandleFunc("/v1/monitoring/scheduler/stop", r.monitoringHandler.StopScheduler).Methods("POST")
	r.router.HandleFunc("/v1/monitoring/scheduler/status", r.monitoringHandler.SchedulerStatus).Methods("GET")

	r.router.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
	}).Methods("GET")
}
