package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taproom/internal/bootstrap"
	"taproom/internal/config"
	"taproom/internal/handlers"
	"taproom/internal/middleware"
	"taproom/internal/models"
	"taproom/internal/repositories"
	"taproom/internal/services"
	"taproom/pkg/db"
	"taproom/pkg/logger"
	"taproom/pkg/metrics"
	"taproom/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const serviceName = "taproom"

func main() {
	// --- Configuration ---
	_ = godotenv.Load() // a missing .env file is fine
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})

	// --- Database ---
	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to connect to database")
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer func() {
			if err := mqClient.Close(); err != nil {
				log.Error().Err(err).Msg("error closing RabbitMQ client")
			}
		}()
		if err := mqClient.ConsumeOrderEvents(rabbitmq.LogOrderEvent(log)); err != nil {
			log.Error().Err(err).Msg("failed to start RabbitMQ consumer")
		}
		publisher = mqClient
	} else {
		log.Info().Msg("RABBITMQ_URL not set, order events are disabled")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	app, err := newApp(ctx, cfg, conn, log, publisher)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.AppPort).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("error during Fiber shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}

// newApp migrates the schema, ensures the API account, seeds sample data and
// wires the HTTP routes. A nil publisher disables order events.
func newApp(ctx context.Context, cfg *config.Config, conn *gorm.DB, log zerolog.Logger, publisher services.EventPublisher) (*fiber.App, error) {
	if err := conn.WithContext(ctx).AutoMigrate(models.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// --- Repositories ---
	beerRepo := repositories.NewGORMBeerRepository(conn)
	customerRepo := repositories.NewGORMCustomerRepository(conn)
	orderRepo := repositories.NewGORMOrderRepository(conn)
	userRepo := repositories.NewGORMUserRepository(conn)

	// --- Services ---
	beerService := services.NewBeerService(beerRepo)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, beerRepo, customerRepo, publisher, log.With().Str("component", "orders").Logger())
	authService := services.NewAuthService(userRepo)

	if err := authService.EnsureUser(ctx, cfg.AuthUsername, cfg.AuthPassword); err != nil {
		return nil, fmt.Errorf("failed to ensure API account: %w", err)
	}

	if cfg.BootstrapData {
		loader := bootstrap.NewLoader(beerRepo, customerRepo, log.With().Str("component", "bootstrap").Logger())
		if err := loader.Run(ctx, cfg.BootstrapCSVPath); err != nil {
			return nil, fmt.Errorf("failed to load bootstrap data: %w", err)
		}
	}

	// --- Handlers ---
	httpLog := log.With().Str("component", "http").Logger()
	beerHandler := handlers.NewBeerHandler(beerService, httpLog)
	customerHandler := handlers.NewCustomerHandler(customerService, httpLog)
	orderHandler := handlers.NewOrderHandler(orderService, httpLog)

	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ErrorHandler: handlers.ErrorHandler(httpLog),
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(httpLog))
	app.Use(middleware.Metrics(metrics.NewHTTPMetrics(reg)))

	// --- Health and metrics endpoints ---
	app.Get("/health", healthHandler(conn, publisher != nil))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// --- API Routes ---
	apiV1 := app.Group("/api/v1", middleware.AuthRequired(authService, httpLog))
	beerHandler.RegisterRoutes(apiV1)
	customerHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	return app, nil
}

func healthHandler(conn *gorm.DB, messaging bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, health, database := fiber.StatusOK, "healthy", "up"
		sqlDB, err := conn.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			status, health, database = fiber.StatusServiceUnavailable, "unhealthy", "down"
		}

		rabbit := "disabled"
		if messaging {
			rabbit = "enabled"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   health,
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
			"rabbitmq": rabbit,
		})
	}
}
