package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	log.Info().Msg("search dispatched")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "search dispatched", entry["message"])
	assert.Equal(t, "test-service", entry["service"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewWithOutput_DefaultServiceName(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{}, &buf)

	log.Info().Msg("hello")

	assert.Equal(t, "sourcing-assistant", decodeLine(t, &buf)["service"])
}

func TestNewWithOutput_Console(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console"}, &buf)

	log.Info().Msg("human readable")

	assert.Contains(t, buf.String(), "human readable")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		emit      func(*Logger)
		shouldLog bool
	}{
		{"debug at debug level", "debug", func(l *Logger) { l.Debug().Msg("x") }, true},
		{"debug at info level", "info", func(l *Logger) { l.Debug().Msg("x") }, false},
		{"warn at info level", "info", func(l *Logger) { l.Warn().Msg("x") }, true},
		{"info at error level", "error", func(l *Logger) { l.Info().Msg("x") }, false},
		{"invalid level falls back to info", "verbose", func(l *Logger) { l.Info().Msg("x") }, true},
		{"invalid level hides debug", "verbose", func(l *Logger) { l.Debug().Msg("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewWithOutput(Config{Level: tt.level, Format: "json"}, &buf))
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestNewWithOutput_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("with caller")

	assert.Contains(t, decodeLine(t, &buf)["caller"], "logger_test.go")
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	base.WithRequestID("req-123").
		WithProvider("gemini").
		WithGeneration(7).
		WithContext("destination", "Recife").
		Info().Msg("scoped")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "gemini", entry["provider"])
	assert.Equal(t, float64(7), entry["generation"])
	assert.Equal(t, "Recife", entry["destination"])
}

func TestLogger_ContextFieldsDoNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	_ = base.WithProvider("gemini")
	base.Info().Msg("plain")

	_, hasProvider := decodeLine(t, &buf)["provider"]
	assert.False(t, hasProvider)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().WithProvider("x").Info().Msg("discarded")
	})
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	scoped := NewWithOutput(Config{Level: "info", Format: "json"}, &buf).WithRequestID("req-9")

	ctx := IntoContext(context.Background(), scoped)
	FromContext(ctx).Info().Msg("from ctx")

	assert.Equal(t, "req-9", decodeLine(t, &buf)["request_id"])
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	Global = nil
	t.Cleanup(func() { Global = nil })

	var buf bytes.Buffer
	SetGlobal(NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "global-test"}, &buf))

	FromContext(context.Background()).Info().Msg("fallback")
	//nolint:staticcheck // nil context is part of the contract
	FromContext(nil).Info().Msg("nil ctx")

	assert.Contains(t, buf.String(), "fallback")
	assert.Contains(t, buf.String(), "nil ctx")
}

func TestFromContextOr(t *testing.T) {
	var buf bytes.Buffer
	fallback := NewWithOutput(Config{Level: "info", Format: "json"}, &buf).WithProvider("fallback")

	FromContextOr(context.Background(), fallback).Info().Msg("no logger in ctx")
	assert.Equal(t, "fallback", decodeLine(t, &buf)["provider"])

	buf.Reset()
	scoped := fallback.WithRequestID("req-1")
	FromContextOr(IntoContext(context.Background(), scoped), Nop()).Info().Msg("scoped")
	assert.Equal(t, "req-1", decodeLine(t, &buf)["request_id"])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "sourcing-assistant", cfg.ServiceName)
}

func TestGlobalLogger(t *testing.T) {
	Global = nil
	t.Cleanup(func() { Global = nil })

	var buf bytes.Buffer
	SetGlobal(NewWithOutput(Config{Level: "debug", Format: "json", ServiceName: "global-test"}, &buf))

	Info().Msg("global info")
	Warn().Msg("global warn")
	Debug().Msg("global debug")
	Error().Msg("global error")

	out := buf.String()
	for _, msg := range []string{"global info", "global warn", "global debug", "global error"} {
		assert.Contains(t, out, msg)
	}
	assert.Contains(t, out, "global-test")
}

func TestGlobalLoggerAutoInit(t *testing.T) {
	Global = nil
	t.Cleanup(func() { Global = nil })

	Info().Msg("auto-init test")

	assert.NotNil(t, Global)
}
