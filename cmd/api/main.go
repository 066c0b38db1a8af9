package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/detektor-id/detektor-api/internal/config"
	"github.com/detektor-id/detektor-api/internal/database"
	"github.com/detektor-id/detektor-api/internal/detector"
	"github.com/detektor-id/detektor-api/internal/handler"
	"github.com/detektor-id/detektor-api/internal/middleware"
	"github.com/detektor-id/detektor-api/internal/router"
	"github.com/detektor-id/detektor-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var cache *redis.Client
	if cfg.CacheEnabled() {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer cache.Close()
	} else {
		logger.Info().Msg("result cache disabled, no redis url configured")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	model := detector.NewModel()

	detectService := service.NewDetectionService(model, cache, cfg.ResultCacheTTL, cfg.MinTextLength, validate, logger)
	detectHandler := handler.NewDetectHandler(detectService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		DetectHandler: detectHandler,
		RateLimiter:   middleware.RateLimit("detect", cfg.RateLimitMax, cfg.RateLimitWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
