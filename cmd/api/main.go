package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ecoleta-discovery/internal/config"
	httpDelivery "github.com/ecoleta-discovery/internal/delivery/http"
	"github.com/ecoleta-discovery/internal/delivery/http/handler"
	"github.com/ecoleta-discovery/internal/infrastructure/contact"
	"github.com/ecoleta-discovery/internal/infrastructure/ecoleta"
	"github.com/ecoleta-discovery/internal/infrastructure/geolocation"
	"github.com/ecoleta-discovery/internal/pkg/logger"
	"github.com/ecoleta-discovery/internal/usecase"
	"github.com/ecoleta-discovery/internal/worker"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Ecoleta discovery")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Bridge.Env),
		zap.String("bridge_addr", cfg.GetBridgeAddr()),
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("city", cfg.Search.City),
		zap.String("uf", cfg.Search.UF),
	)

	// 3. Collaborators
	apiClient := ecoleta.NewClient(&cfg.API, log)
	geoProvider := geolocation.NewStaticProvider(&cfg.Device, log)
	dispatcher := contact.NewLogDispatcher(log)

	// 4. Discovery session
	controller := usecase.NewDiscoveryController(
		apiClient,
		apiClient,
		geoProvider,
		usecase.DiscoveryParams{City: cfg.Search.City, UF: cfg.Search.UF},
		usecase.DiscoveryOptions{FetchTimeout: cfg.API.FetchTimeout},
		log,
	)

	workerManager := worker.NewWorkerManager(log).WithShutdownTimeout(10 * time.Second)
	workerManager.Register(controller)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start discovery session", zap.Error(err))
	}
	controller.Initialize()

	log.Info("Discovery session started", zap.String("session_id", controller.SessionID()))

	// 5. HTTP bridge
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewDiscoveryHandler(controller, log),
		handler.NewDetailHandler(apiClient, dispatcher, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	cancel()
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping discovery session", zap.Error(err))
	}

	log.Info("Stopped")
}
