package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "1m30s", cfg.Server.WriteTimeout.String(), "default write timeout")

	assert.Equal(t, "1m0s", cfg.Timeouts.Search.String(), "default search timeout")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)

	// Search defaults
	assert.Equal(t, ProviderFixture, cfg.Search.Provider)
	assert.Equal(t, "docs/response-mock/search_response.json", cfg.Search.FixturePath)
	assert.True(t, cfg.Search.StaleGuard)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.True(t, cfg.Gemini.Grounding)
	assert.Equal(t, "15", cfg.Pricing.DefaultMarkupPercent.String())
	assert.True(t, cfg.DefaultMarkup().Valid)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location().String())
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":            "3000",
		"SERVER_READ_TIMEOUT":    "30s",
		"SERVER_WRITE_TIMEOUT":   "45s",
		"TIMEOUT_SEARCH":         "40s",
		"LOG_LEVEL":              "debug",
		"LOG_FORMAT":             "console",
		"APP_ENV":                "production",
		"APP_TIMEZONE":           "UTC",
		"SEARCH_PROVIDER":        "gemini",
		"GEMINI_API_KEY":         "test-key",
		"GEMINI_MODEL":           "gemini-2.5-pro",
		"GEMINI_GROUNDING":       "false",
		"DEFAULT_MARKUP_PERCENT": "12.5",
		"STALE_RESPONSE_GUARD":   "false",
		"METRICS_ENABLED":        "false",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "45s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "40s", cfg.Timeouts.Search.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.Equal(t, ProviderGemini, cfg.Search.Provider)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.False(t, cfg.Gemini.Grounding)
	assert.Equal(t, "12.5", cfg.Pricing.DefaultMarkupPercent.String())
	assert.False(t, cfg.Search.StaleGuard)
	assert.False(t, cfg.Metrics.Enabled)
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT": "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port, "overridden port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s", "SERVER_READ_TIMEOUT must be positive"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero search timeout", "TIMEOUT_SEARCH", "0s", "TIMEOUT_SEARCH must be positive"},
		{"negative search timeout", "TIMEOUT_SEARCH", "-1s", "TIMEOUT_SEARCH must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_WriteTimeoutCoversSearch tests that a search fits within one HTTP write.
func TestLoad_Validation_WriteTimeoutCoversSearch(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"SERVER_WRITE_TIMEOUT": "30s",
		"TIMEOUT_SEARCH":       "60s",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be less than TIMEOUT_SEARCH")
	assert.Nil(t, cfg)

	setEnvVars(t, map[string]string{"SERVER_WRITE_TIMEOUT": "60s"})
	cfg, err = Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

// TestLoad_Validation_Enums tests the string settings restricted to fixed values.
func TestLoad_Validation_Enums(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		value   string
		wantErr bool
		errMsg  string
	}{
		{"valid debug", "LOG_LEVEL", "debug", false, ""},
		{"valid warn", "LOG_LEVEL", "warn", false, ""},
		{"invalid trace", "LOG_LEVEL", "trace", true, "LOG_LEVEL must be one of"},
		{"valid console", "LOG_FORMAT", "console", false, ""},
		{"invalid text", "LOG_FORMAT", "text", true, "LOG_FORMAT must be one of"},
		{"valid staging", "APP_ENV", "staging", false, ""},
		{"invalid local", "APP_ENV", "local", true, "APP_ENV must be one of"},
		{"invalid provider", "SEARCH_PROVIDER", "openai", true, "SEARCH_PROVIDER must be one of"},
		{"invalid timezone", "APP_TIMEZONE", "Mars/Olympus_Mons", true, "APP_TIMEZONE is not a valid timezone"},
		{"valid timezone", "APP_TIMEZONE", "America/Recife", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_Provider tests provider-specific requirements.
func TestLoad_Validation_Provider(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		errMsg string
	}{
		{
			name:   "gemini without key",
			vars:   map[string]string{"SEARCH_PROVIDER": "gemini"},
			errMsg: "GEMINI_API_KEY is required",
		},
		{
			name:   "gemini with key",
			vars:   map[string]string{"SEARCH_PROVIDER": "gemini", "GEMINI_API_KEY": "k"},
			errMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			if tt.errMsg == "" {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

// TestLoad_Validation_Markup tests the default markup setting.
func TestLoad_Validation_Markup(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"zero", "0", false},
		{"fractional", "7.5", false},
		{"negative", "-5", true},
		{"not a number", "quinze", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"DEFAULT_MARKUP_PERCENT": tt.value})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.value, cfg.Pricing.DefaultMarkupPercent.String())
			}
		})
	}
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_READ_TIMEOUT":  "1m30s",
		"SERVER_WRITE_TIMEOUT": "2m",
		"TIMEOUT_SEARCH":       "500ms",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1m30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "2m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "500ms", cfg.Timeouts.Search.String())
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_EnvHelpers tests the IsDevelopment and IsProduction helper methods.
func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		production  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

func TestConfig_LocationFallback(t *testing.T) {
	cfg := &Config{App: AppConfig{Timezone: "Not/AZone"}}
	assert.Equal(t, "UTC", cfg.Location().String())
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"TIMEOUT_SEARCH",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
		"APP_TIMEZONE",
		"SEARCH_PROVIDER",
		"FIXTURE_PATH",
		"STALE_RESPONSE_GUARD",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"GEMINI_GROUNDING",
		"DEFAULT_MARKUP_PERCENT",
		"METRICS_ENABLED",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
