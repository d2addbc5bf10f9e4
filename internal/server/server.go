// Package server assembles the HTTP API: middleware, handlers and the
// services behind them.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"money-tracker/internal/config"
	"money-tracker/internal/handlers"
	"money-tracker/internal/middleware"
	"money-tracker/internal/repositories"
	"money-tracker/internal/services"
	"money-tracker/internal/taxonomy"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const bodyLimit = "64K"

// Dependencies are the long-lived components the server is built from.
// Registerer and Gatherer default to the prometheus globals.
type Dependencies struct {
	DB         *gorm.DB
	Registry   *taxonomy.Registry
	Classifier services.LabelClassifierInterface
	Extractor  services.AmountExtractorInterface
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	rateLimiter *middleware.RateLimiter
}

// New wires repositories, services and handlers onto a fresh echo instance.
func New(cfg *config.Config, deps Dependencies) *Server {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	s := &Server{
		echo:        e,
		config:      cfg,
		rateLimiter: middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond),
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(bodyLimit))
	if len(cfg.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.Server.CORSAllowOrigins,
			AllowHeaders: []string{echo.HeaderContentType, middleware.OwnerHeader, middleware.TraceIDHeader},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		}))
	}

	s.registerRoutes(deps)

	return s
}

func (s *Server) registerRoutes(deps Dependencies) {
	transactionRepo := repositories.NewTransactionRepository(deps.DB)

	classificationService := services.NewTransactionClassificationService(
		transactionRepo,
		deps.Classifier,
		deps.Extractor,
		deps.Registry,
		services.NewClassificationLogger(slog.Default()),
		services.NewPrometheusMetrics(deps.Registerer),
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
	)
	summaryService := services.NewSummaryService(transactionRepo, deps.Registry)

	healthHandler := handlers.NewHealthCheckHandler(deps.DB, deps.Classifier, deps.Extractor)
	transactionHandler := handlers.NewTransactionHandler(classificationService)
	taxonomyHandler := handlers.NewTaxonomyHandler(deps.Registry, deps.Classifier)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	s.echo.GET("/health", healthHandler.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api/v1", s.rateLimiter.Middleware())

	// Taxonomy is the same for every owner
	api.GET("/taxonomy", taxonomyHandler.GetTaxonomy)
	api.GET("/model/labels", taxonomyHandler.GetModelLabels)

	owned := api.Group("", middleware.OwnerFromHeader())
	owned.POST("/transactions", transactionHandler.CreateTransaction)
	owned.GET("/transactions", transactionHandler.ListTransactions)
	owned.GET("/transactions/:id", transactionHandler.GetTransaction)
	owned.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	owned.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	owned.GET("/summary", summaryHandler.GetSummary)
	owned.GET("/analytics", summaryHandler.GetAnalytics)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is done, then drains in-flight requests within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	address := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)

	limiterCtx, stopLimiter := context.WithCancel(ctx)
	defer stopLimiter()
	go s.rateLimiter.Run(limiterCtx)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("address", address))
		if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.config.Server.ShutdownTimeout > 0 {
		return s.config.Server.ShutdownTimeout
	}
	return 10 * time.Second
}
