package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightboard-service/internal/infrastructure/config"
	"flightboard-service/internal/infrastructure/persistence"
	"flightboard-service/internal/infrastructure/router"
	sheetRepo "flightboard-service/internal/interface/repository"
	"flightboard-service/internal/usecase"
	"flightboard-service/pkg/logger"
	"flightboard-service/pkg/metrics"
	"flightboard-service/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flightboard Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up snapshot archive, MongoDB only when enabled
	var mongoClient *mongo.Client
	snapshotRepository := sheetRepo.NewNoopSnapshotRepository()
	if cfg.SnapshotEnabled {
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		mongoClient = client
		snapshotRepository = sheetRepo.NewMongoSnapshotRepository(db)
	}

	// Set up the pipeline
	m := metrics.NewMetrics("flightboard")
	sheetRepository := sheetRepo.NewHTTPSheetRepository(cfg.SheetCSVURL, cfg.FetchTimeout, cfg.FetchMaxRetries, log)
	sheetParser := utils.NewSheetParser(log)
	reportBuilder := usecase.NewReportBuilder(sheetRepository, snapshotRepository, sheetParser, m, log)

	// Set up HTTP server
	handler := router.New(reportBuilder, log)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
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

	cancel()

	// Disconnect from MongoDB
	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Flightboard Service stopped")
}
