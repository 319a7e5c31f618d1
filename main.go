package main

import (
	"log"

	"github.com/joho/godotenv"

	"court-monitor/config"
	"court-monitor/di"
	"court-monitor/models"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("init container: %v", err)
	}

	if err := models.AutoMigrate(container.GormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	container.MonitoringScheduler.Start()

	// Blocks until SIGINT/SIGTERM and shuts the server down gracefully.
	container.MonitorHttpServer.Start()

	container.MonitoringScheduler.Stop()
}
