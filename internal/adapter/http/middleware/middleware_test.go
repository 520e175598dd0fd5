package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
)

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewWithOutput(logger.Config{Level: "debug", Format: "json"}, buf)
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// logEntries decodes every JSON line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/test")

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c))
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/test")
	c.Request().Header.Set(RequestIDHeader, "existing-request-id-12345")

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	assert.Equal(t, "existing-request-id-12345", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "existing-request-id-12345", GetRequestID(c))
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/test")
	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newTestContext(http.MethodPost, "/api/v1/searches?debug=1")
	c.Request().Header.Set("User-Agent", "TestAgent/1.0")
	c.Set("request_id", "test-req-id-123")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/searches", entry["path"])
	assert.Equal(t, "debug=1", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusCreated, "info"},
		{"client error", http.StatusNotFound, "warn"},
		{"server error", http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			c, _ := newTestContext(http.MethodGet, "/x")

			handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entry := findEntry(logEntries(t, &logBuf), "HTTP request")
			require.NotNil(t, entry)
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newTestContext(http.MethodGet, "/missing")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return echo.ErrNotFound
	})

	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, "warn", entry["level"])
}

func TestRequestLogger_ScopesContextLogger(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newTestContext(http.MethodGet, "/x")
	c.Set("request_id", "ctx-req-1")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		logger.FromContext(c.Request().Context()).Info().Msg("inside handler")
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "inside handler")
	require.NotNil(t, entry)
	assert.Equal(t, "ctx-req-1", entry["request_id"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500OnPanic(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newTestContext(http.MethodGet, "/panic")

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		panic("test panic")
	})

	assert.NotPanics(t, func() { _ = handler(c) })

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code": "internal_error", "message": "An unexpected error occurred"}`, rec.Body.String())
}

func TestRecover_LogsPanicWithStackTrace(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newTestContext(http.MethodGet, "/panic")
	c.Set("request_id", "stack-test-id")

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		panic("stack trace test panic")
	})
	_ = handler(c)

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "stack-test-id", entry["request_id"])
	assert.Equal(t, "stack trace test panic", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
}

func TestRecover_HandlesRuntimeErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newTestContext(http.MethodGet, "/panic")

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newTestContext(http.MethodGet, "/normal")

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newTestContext(http.MethodGet, "/panic")

	handler := RecoverWithConfig(newTestLogger(&logBuf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack test")
	})
	_ = handler(c)

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)
	assert.NotContains(t, entry, "stack")
}

// =====================================================
// Setup Helper Tests
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, newTestLogger(&logBuf))

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, reqID)

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, reqID, entry["request_id"])
}

func TestSetup_RecoversPanicAndLogsIt(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, newTestLogger(&logBuf))

	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entries := logEntries(t, &logBuf)
	require.NotNil(t, findEntry(entries, "Panic recovered"))
	request := findEntry(entries, "HTTP request")
	require.NotNil(t, request)
	assert.Equal(t, float64(500), request["status"])
}

func TestSetupWithConfig_AppliesCustomConfig(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	SetupWithConfig(e, newTestLogger(&logBuf), RecoveryConfig{DisablePrintStack: true})

	e.GET("/panic", func(c echo.Context) error {
		panic("config panic test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)
	assert.NotContains(t, entry, "stack")
}

func TestChain_ReturnsMiddlewareSlice(t *testing.T) {
	chain := Chain(logger.Nop())

	assert.Len(t, chain, 3)

	e := echo.New()
	e.Use(chain...)
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "chain test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
