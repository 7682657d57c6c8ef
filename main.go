package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/config"
	"github.com/HSouheill/apre_backend/controllers"
	"github.com/HSouheill/apre_backend/middleware"
	"github.com/HSouheill/apre_backend/repositories"
	"github.com/HSouheill/apre_backend/routes"
	"github.com/HSouheill/apre_backend/services"
	"github.com/HSouheill/apre_backend/utils"
	"github.com/HSouheill/apre_backend/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger := config.NewLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	client, err := config.ConnectDB(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.WithError(err).Warn("MongoDB disconnect failed")
		}
	}()
	db := client.Database(cfg.DBName)

	if cfg.EnsureIndexes {
		config.EnsureIndexes(ctx, db, logger)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := middleware.RegisterMetrics(registry); err != nil {
		logger.WithError(err).Fatal("Failed to register metrics")
	}

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)
	e.IPExtractor = echo.ExtractIPDirect()
	if cfg.TrustProxyHeaders {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
		BlockDuration:     cfg.RateLimitBlock,
		SkipPrefixes:      []string{"/health", "/metrics"},
		SkipLoopback:      cfg.RateLimitSkipLoopback,
	})
	defer rateLimiter.Stop()

	// Middleware
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Metrics())
	e.Use(middleware.CORSWithConfig(middleware.NewCORSConfig(cfg.CORSAllowedOrigins)))
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{cfg.APIBaseURL},
		HSTS:           !cfg.IsDevelopment(),
	}))
	e.Use(rateLimiter.RateLimit())
	if !cfg.IsDevelopment() {
		e.Use(httpsRedirect())
	}

	routes.SetupRoutes(e, routes.PingerFunc(func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}), registry)

	// Initialize repositories and controllers
	routes.RegisterReportRoutes(e, routes.ReportControllers{
		Sales:            controllers.NewSalesController(repositories.NewSalesRepository(db), cfg.QueryTimeout),
		AgentPerformance: controllers.NewAgentPerformanceController(repositories.NewAgentPerformanceRepository(db), cfg.QueryTimeout),
		CustomerFeedback: controllers.NewCustomerFeedbackController(repositories.NewCustomerFeedbackRepository(db), cfg.QueryTimeout),
	})

	// Report pages call back into the JSON API
	reportClient := services.NewReportClient(cfg.APIBaseURL, cfg.QueryTimeout+5*time.Second, logger)
	if err := web.NewPages(reportClient, logger).Register(e); err != nil {
		logger.WithError(err).Fatal("Failed to load report page templates")
	}

	go func() {
		logger.WithFields(logrus.Fields{"addr": cfg.Addr(), "env": cfg.Env}).Info("Starting APRE report service")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(http.StatusMovedPermanently, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}
