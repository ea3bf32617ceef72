package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/sundial-app/sundial/internal/api/http"
	"github.com/sundial-app/sundial/internal/config"
	"github.com/sundial-app/sundial/internal/locale"
	"github.com/sundial-app/sundial/internal/scheduler"
	"github.com/sundial-app/sundial/internal/store"
	"github.com/sundial-app/sundial/internal/suncal"
	"github.com/sundial-app/sundial/internal/suncal/providers"
	"github.com/sundial-app/sundial/internal/tzclock"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound Open-Meteo calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	msgs := locale.ForLanguage(cfg.Language)
	clock := tzclock.New(msgs)

	geocoder := providers.NewGeocoderClient(httpClient, cfg.GeocodingURL, cfg.Language)
	forecast := providers.NewForecastClient(httpClient, cfg.ForecastURL)

	// Core service running the geocode-then-fetch pipeline.
	service := suncal.NewService(geocoder, forecast, clock)

	// Latest-result slots shared by handlers and the scheduler.
	mem := store.NewMemoryStore()

	// Scheduler that keeps the home place's calendar fresh.
	sched := scheduler.New(service, mem, cfg.HomePlace, cfg.PastDays, cfg.FutureDays, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "sundial",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "sundial",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, mem, msgs, httpapi.Defaults{
		PastDays:   cfg.PastDays,
		FutureDays: cfg.FutureDays,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
