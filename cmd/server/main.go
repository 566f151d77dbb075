package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conserje/internal/booking"
	"conserje/internal/catalog"
	"conserje/internal/commons"
	"conserje/internal/infrastructure/hotelapi"
	"conserje/internal/infrastructure/logger"
	"conserje/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	apiClient := hotelapi.NewClient(cfg.HotelAPI)

	catalogSvc, catalogCtrl := catalog.NewModule(apiClient, zapLogger)

	// Warm load; failure is not fatal. The form stays viewable and
	// submission stays blocked until a later load succeeds.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), cfg.HotelAPI.Timeout)
	if err := catalogSvc.Load(warmCtx); err != nil {
		zapLogger.Warn("starting without room-type catalog", zap.Error(err))
	}
	cancelWarm()

	bookingCtrl := booking.NewModule(apiClient, catalogSvc, cfg, zapLogger)

	router := server.NewRouter(catalogCtrl, bookingCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
