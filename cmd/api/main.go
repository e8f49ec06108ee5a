package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"companyapi/docs"
	"companyapi/internal/config"
	"companyapi/internal/database"
	"companyapi/internal/database/migration"
	handlers "companyapi/internal/http/handler"
	"companyapi/internal/http/middleware"
	"companyapi/internal/logger"
	"companyapi/internal/otel"
	"companyapi/internal/repository/postgres"
	"companyapi/internal/service"
)

// @title Company Contacts API
// @version 1.0
// @description CRUD over companies, countries and contacts.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	// Repositories share one sqlx handle over the traced pool
	dbx := database.Wrap(db)
	svcs := handlers.Services{
		Company: service.NewCompanyService(postgres.NewCompanyPostgres(dbx), log),
		Country: service.NewCountryService(postgres.NewCountryPostgres(dbx), log),
		Contact: service.NewContactService(postgres.NewContactPostgres(dbx), cfg.Pagination.PageSize, log),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID must run before Logger so the request logger carries the id
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		host := c.Get("Host")
		if host == "" {
			host = cfg.AppHost
		}
		docs.SwaggerInfo.Host = host
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("http shutdown failed", zap.Error(err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("tracing shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
	log.Info("server_stopped")
}
