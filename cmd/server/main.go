package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airport-registry-service/internal/infrastructure/config"
	"airport-registry-service/internal/infrastructure/persistence"
	storerepo "airport-registry-service/internal/interface/repository"
	"airport-registry-service/internal/interface/rest"
	"airport-registry-service/internal/usecase"
	"airport-registry-service/pkg/logger"
	"airport-registry-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Airport Registry Service", "version", cfg.AppVersion)

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	if err := storerepo.Migrate(db); err != nil {
		log.Fatal("Failed to migrate registry tables", "error", err)
	}

	// Set up repositories
	airlineRepo := storerepo.NewGormAirlineRepository(db)
	pilotRepo := storerepo.NewGormPilotRepository(db)
	flightRepo := storerepo.NewGormFlightRepository(db)

	// Set up metrics and services
	m := metrics.NewMetrics("airport_registry")

	airlineService := usecase.NewAirlineService(airlineRepo, log)
	pilotService := usecase.NewPilotService(pilotRepo, log)
	flightService := usecase.NewFlightService(flightRepo, pilotRepo, airlineRepo, m, log)

	// Set up HTTP surface
	router := rest.NewRouter(
		rest.NewAirlineHandler(airlineService, log),
		rest.NewPilotHandler(pilotService, log),
		rest.NewFlightHandler(flightService, log),
		m,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Info("Airport Registry Service stopped")
}
