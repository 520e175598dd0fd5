// Package main is the entry point for the travel sourcing assistant service.
//
//	@title						Travel Sourcing Assistant API
//	@version					1.0.0
//	@description				Sources flights, hotels, transfers and experiences through a search collaborator and assembles priced quotes for travel agents.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travel-sourcing/sourcing-assistant/docs"

	// Application layers
	sourcinghttp "github.com/travel-sourcing/sourcing-assistant/internal/adapter/http"
	"github.com/travel-sourcing/sourcing-assistant/internal/adapter/http/middleware"
	"github.com/travel-sourcing/sourcing-assistant/internal/adapter/provider/fixture"
	"github.com/travel-sourcing/sourcing-assistant/internal/adapter/provider/gemini"
	"github.com/travel-sourcing/sourcing-assistant/internal/config"
	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/metrics"
	"github.com/travel-sourcing/sourcing-assistant/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Search.Provider).
		Msg("Configuration loaded")

	provider, err := setupProvider(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize search provider")
	}

	reg := setupMetricsRegistry(cfg)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log)

	// Setup routes
	setupRoutes(e, cfg, provider, reg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger builds the service logger from config and installs it as the global one.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  logger.DefaultServiceName,
	})
	logger.SetGlobal(log)
	return log
}

// setupProvider registers the available search collaborators and returns the one
// selected by SEARCH_PROVIDER.
func setupProvider(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.SearchProvider, error) {
	registry := domain.NewProviderRegistry()
	registry.Register(fixture.NewAdapter(cfg.Search.FixturePath))

	if cfg.Gemini.APIKey != "" {
		adapter, err := gemini.NewAdapter(ctx, gemini.Config{
			APIKey:    cfg.Gemini.APIKey,
			Model:     cfg.Gemini.Model,
			Grounding: cfg.Gemini.Grounding,
		})
		if err != nil {
			return nil, err
		}
		registry.Register(adapter)
	}

	log.Debug().Strs("providers", registry.Names()).Msg("Search providers registered")

	provider := registry.Get(cfg.Search.Provider)
	if provider == nil {
		return nil, fmt.Errorf("search provider %q is not available, registered: %v", cfg.Search.Provider, registry.Names())
	}
	return provider, nil
}

// setupMetricsRegistry returns nil when metrics are disabled.
func setupMetricsRegistry(cfg *config.Config) *prometheus.Registry {
	if !cfg.Metrics.Enabled {
		return nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// setupRoutes wires the session and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, provider domain.SearchProvider, reg *prometheus.Registry, log *logger.Logger) {
	var searchMetrics *metrics.SearchMetrics
	if reg != nil {
		searchMetrics = metrics.NewSearchMetrics(reg)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// Initialize use case with config
	searchUseCase := usecase.NewSearchUseCase(provider, &usecase.Config{
		Timeout:  cfg.Timeouts.Search,
		Location: cfg.Location(),
		Metrics:  searchMetrics,
		Logger:   log,
	})

	session := usecase.NewSession(searchUseCase, &usecase.SessionConfig{
		StaleGuard:           cfg.Search.StaleGuard,
		DefaultMarkupPercent: cfg.DefaultMarkup(),
		Location:             cfg.Location(),
		Metrics:              searchMetrics,
		Logger:               log,
	})

	// Initialize handler and API routes
	sourcinghttp.RegisterRoutes(e, sourcinghttp.NewSourcingHandler(session, provider.Name()))

	// Swagger documentation endpoint
	if !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
