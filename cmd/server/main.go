package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/acadops/courseslot-backend/internal/config"
	"github.com/acadops/courseslot-backend/internal/database"
	"github.com/acadops/courseslot-backend/internal/handler"
	"github.com/acadops/courseslot-backend/internal/logger"
	"github.com/acadops/courseslot-backend/internal/middleware"
	"github.com/acadops/courseslot-backend/internal/repository"
	"github.com/acadops/courseslot-backend/internal/router"
	"github.com/acadops/courseslot-backend/internal/service"
	"github.com/acadops/courseslot-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting courseslot backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Create the tables up front so no request path depends on lazy DDL.
	if err := database.EnsureSchema(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure schema")
	}

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	courseRepo := repository.NewCourseRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	allocationRepo := repository.NewAllocationRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	cache := service.NewCatalogCache(rdb, cfg, log)
	catalogService := service.NewCatalogService(courseRepo, facultyRepo, allocationRepo, cache, log)
	importService := service.NewImportService(courseRepo, facultyRepo, cache, log)
	allocationService := service.NewAllocationService(allocationRepo, cache, log)
	deletionService := service.NewDeletionService(facultyRepo, courseRepo, cache, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Catalog:    handler.NewCatalogHandler(catalogService),
		Import:     handler.NewImportHandler(importService),
		Allocation: handler.NewAllocationHandler(allocationService),
		Entry:      handler.NewEntryHandler(catalogService),
		Deletion:   handler.NewDeletionHandler(deletionService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	var limiter *middleware.RateLimiter
	if cfg.ImportRateLimit > 0 {
		limiter = middleware.NewRateLimiter(rdb, cfg.ImportRateLimit, time.Minute, log)
	}
	r := router.SetupRouter(handlers, cfg, limiter)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
