// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/timeutil"
)

// Search provider names accepted in SEARCH_PROVIDER.
const (
	ProviderGemini  = "gemini"
	ProviderFixture = "fixture"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Search   SearchConfig
	Gemini   GeminiConfig
	Pricing  PricingConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
}

// TimeoutConfig holds timeout settings for search operations.
type TimeoutConfig struct {
	Search time.Duration `env:"TIMEOUT_SEARCH" envDefault:"60s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone determines "today" for default search dates
	Timezone string `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`
}

// SearchConfig selects and tunes the search collaborator.
type SearchConfig struct {
	Provider    string `env:"SEARCH_PROVIDER" envDefault:"fixture"`
	FixturePath string `env:"FIXTURE_PATH" envDefault:"docs/response-mock/search_response.json"`
	StaleGuard  bool   `env:"STALE_RESPONSE_GUARD" envDefault:"true"`
}

// GeminiConfig holds the Gemini API settings.
type GeminiConfig struct {
	APIKey    string `env:"GEMINI_API_KEY"`
	Model     string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Grounding bool   `env:"GEMINI_GROUNDING" envDefault:"true"`
}

// PricingConfig holds quoting defaults.
type PricingConfig struct {
	DefaultMarkupPercent decimal.Decimal `env:"DEFAULT_MARKUP_PERCENT" envDefault:"15"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Search <= 0 {
		return fmt.Errorf("TIMEOUT_SEARCH must be positive")
	}

	// A search response must fit in one HTTP write
	if cfg.Server.WriteTimeout < cfg.Timeouts.Search {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) must not be less than TIMEOUT_SEARCH (%s)",
			cfg.Server.WriteTimeout, cfg.Timeouts.Search)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if _, err := timeutil.GetLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE is not a valid timezone: %w", err)
	}

	switch cfg.Search.Provider {
	case ProviderFixture:
		if cfg.Search.FixturePath == "" {
			return fmt.Errorf("FIXTURE_PATH is required when SEARCH_PROVIDER is %q", ProviderFixture)
		}
	case ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when SEARCH_PROVIDER is %q", ProviderGemini)
		}
		if cfg.Gemini.Model == "" {
			return fmt.Errorf("GEMINI_MODEL must not be empty")
		}
	default:
		return fmt.Errorf("SEARCH_PROVIDER must be one of: gemini, fixture; got %q", cfg.Search.Provider)
	}

	if cfg.Pricing.DefaultMarkupPercent.IsNegative() {
		return fmt.Errorf("DEFAULT_MARKUP_PERCENT must not be negative, got %s", cfg.Pricing.DefaultMarkupPercent)
	}

	return nil
}

// Location returns the configured agency timezone.
// Load has already validated it, so the UTC fallback only applies to hand-built configs.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.GetLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DefaultMarkup returns the default markup percent as a valid NullDecimal.
func (c *Config) DefaultMarkup() decimal.NullDecimal {
	return decimal.NewNullDecimal(c.Pricing.DefaultMarkupPercent)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
