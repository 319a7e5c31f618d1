package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"court-monitor/api"
	"court-monitor/api/playtomic"
	"court-monitor/config"
	redisdao "court-monitor/dao/redis"
	"court-monitor/db"
	"court-monitor/repository"
	"court-monitor/server"
	"court-monitor/server/handlers"
	services "court-monitor/service"
)

// Container holds all application dependencies.
type Container struct {
	GormDB              *gorm.DB
	RedisClient         db.RedisClient
	StatsCache          *redisdao.RedisStatsCache
	VenueRepo           repository.VenueRepository
	ConfigRepo          repository.MonitoringConfigRepository
	PlaytomicAPI        playtomic.PlaytomicAPI
	AvailabilityService *services.AvailabilityService
	UtilizationService  *services.UtilizationService
	MonitoringScheduler *services.MonitoringScheduler
	VenueHandler        *handlers.VenueHandler
	AvailabilityHandler *handlers.AvailabilityHandler
	MonitoringHandler   *handlers.MonitoringHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	MonitorHttpServer   *server.MonitorHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg config.Settings) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)

	gormDB, err := db.NewGormDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	venueRepo := repository.NewGormVenueRepository(gormDB)
	snapshotRepo := repository.NewGormSnapshotRepository(gormDB)
	configRepo := repository.NewGormMonitoringConfigRepository(gormDB)

	// Optional utilization cache.
	var redisClient db.RedisClient
	var statsCache *redisdao.RedisStatsCache
	if cfg.RedisAddr != "" {
		client := db.NewGoRedisClient(context.Background(), goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
		if err := client.Ping(); err != nil {
			log.Printf("Redis unreachable (%v), running without utilization cache", err)
		} else {
			redisClient = client
			statsCache = redisdao.NewRedisStatsCache(client, config.UTILIZATION_CACHE_TTL_SECONDS*time.Second)
		}
	}

	var playtomicApiClient playtomic.PlaytomicAPI
	if cfg.Env != "prod" {
		playtomicApiClient = playtomic.NewPlaytomicApiClientMock()
		log.Printf("Using mock playtomic api")
	} else {
		log.Printf("Using prod playtomic api")
		delay := time.Duration(cfg.RequestDelaySeconds * float64(time.Second))
		httpClient := api.NewHTTPClient(cfg.PlaytomicBaseURL, delay, cfg.MaxRetries)
		playtomicApiClient = playtomic.NewPlaytomicApiClient(httpClient)
	}

	availabilityService := services.NewAvailabilityService(gormDB, venueRepo, playtomicApiClient, statsCache)
	utilizationService := services.NewUtilizationService(venueRepo, snapshotRepo, statsCache)
	scheduler := services.NewMonitoringScheduler(configRepo, venueRepo, availabilityService)

	venueHandler := handlers.NewVenueHandler(venueRepo, playtomicApiClient)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, utilizationService, venueRepo)
	monitoringHandler := handlers.NewMonitoringHandler(
		configRepo, venueRepo, scheduler,
		cfg.DefaultFrequencyMinutes, cfg.DefaultDaysAhead,
	)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, availabilityHandler, monitoringHandler, muxRouter)
	httpServer := server.NewMonitorHttpServer(router, muxRouter, cfg.HTTPAddr)

	return &Container{
		GormDB:              gormDB,
		RedisClient:         redisClient,
		StatsCache:          statsCache,
		VenueRepo:           venueRepo,
		ConfigRepo:          configRepo,
		PlaytomicAPI:        playtomicApiClient,
		AvailabilityService: availabilityService,
		UtilizationService:  utilizationService,
		MonitoringScheduler: scheduler,
		VenueHandler:        venueHandler,
		AvailabilityHandler: availabilityHandler,
		MonitoringHandler:   monitoringHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		MonitorHttpServer:   httpServer,
	}, nil
}
