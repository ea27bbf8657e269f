package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"docvault/docs"
	"docvault/internal/config"
	"docvault/internal/database"
	"docvault/internal/database/migration"
	handlers "docvault/internal/http/handler"
	"docvault/internal/http/middleware"
	"docvault/internal/logging"
	"docvault/internal/metrics"
	"docvault/internal/otel"
	"docvault/internal/repository/postgres"
	"docvault/internal/service"
	"docvault/internal/status"
	"docvault/internal/storage"
)

var (
	gracefulTimeout = 10 * time.Second

	flagCheck bool
)

// loadConfig reads the environment and applies the command-line overrides and logging setup.
func loadConfig() (*config.AppConfig, error) {
	cfg := config.Load()
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagBaseDir != "" {
		cfg.BaseDir = flagBaseDir
	}

	if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	logging.SetLocation(cfg.Location())
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := logging.New("server")
	ctx := logging.With(cmd.Context(), logger)

	shutdownTracing, err := otel.Init(ctx, logging.New("otel"))
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnw("tracing shutdown failed", "error", err)
		}
	}()

	// PostgreSQL connection pool via database/sql
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	checker := status.NewChecker(cfg.BaseDir, database.NewStarter(db))
	if flagCheck {
		if err := checker.Startup(ctx, cfg); err != nil {
			return fmt.Errorf("startup check: %w", err)
		}
	}

	if err := migration.EnsureMigrated(ctx, db, logging.New("migration"), cfg.Database.Host); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// S3-compatible object storage holding the document contents
	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	objRepo := postgres.NewObjectPostgres(db)
	opts := service.Options{SecretMismatchDelay: cfg.Download.SecretMismatchDelay}
	objSvc := service.NewObjectService(objRepo, opts)
	docSvc := service.NewDocumentService(objStore, objRepo, opts)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	// RequestID adds/propagates X-Request-ID and a request-scoped logger
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, cfg.Location()))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:        db,
		Objects:   objSvc,
		Documents: docSvc,
		Status:    checker,
		Config:    cfg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("listening", "addr", addr, "app_root_url", cfg.AppRootURL)
		errCh <- app.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case sig := <-sigCh:
		logger.Infow("shutting down", "signal", sig.String())
	}

	return app.ShutdownWithTimeout(gracefulTimeout)
}
