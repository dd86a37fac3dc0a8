package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hellosvc/internal/config"
	handlers "hellosvc/internal/http/handler"
	"hellosvc/internal/http/middleware"
	"hellosvc/internal/otel"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		ReadTimeout:           time.Duration(cfg.ReadTimeoutSec) * time.Second,
		DisableStartupMessage: !cfg.Debug,
		EnablePrintRoutes:     cfg.Debug,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register request metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	// Register HTTP routes
	handlers.RegisterRoutes(app)

	// Prometheus exposition, excluded from request counting by the middleware
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
