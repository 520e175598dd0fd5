// Package integration provides helpers and integration tests for the sourcing assistant.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the session, the search use case and mock providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-sourcing/sourcing-assistant/internal/adapter/http"
	"github.com/travel-sourcing/sourcing-assistant/internal/adapter/http/middleware"
	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/timeutil"
	"github.com/travel-sourcing/sourcing-assistant/internal/usecase"
)

// Today is the fixed "today" every integration test runs at.
var Today = time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.SourcingHandler
	Session *usecase.Session
}

// NewTestServer creates a new test server around the given session.
func NewTestServer(session *usecase.Session, provider string) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop())

	handler := httpAdapter.NewSourcingHandler(session, provider)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Session: session,
	}
}

// NewTestServerWithProvider wires a session over provider with default settings.
func NewTestServerWithProvider(provider domain.SearchProvider) *TestServer {
	return NewTestServer(CreateSession(provider, nil), provider.Name())
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch body := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/searches",
		Body:   body,
	})
}

// LatestRequest fetches the current results; query may be empty.
func (ts *TestServer) LatestRequest(query string) Response {
	path := "/api/v1/searches/latest"
	if query != "" {
		path += "?" + query
	}
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// AddItemRequest adds an offer to the quote.
func (ts *TestServer) AddItemRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/package/items",
		Body:   body,
	})
}

// PackageRequest fetches the quote.
func (ts *TestServer) PackageRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/package"})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search response.
func (r Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseSnapshot parses the response body as a search snapshot.
func (r Response) ParseSnapshot() (*usecase.SearchSnapshot, error) {
	var snap usecase.SearchSnapshot
	if err := json.Unmarshal(r.Body, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ParsePackage parses the response body as a quote view.
func (r Response) ParsePackage() (*httpAdapter.PackageResponseDTO, error) {
	var pkg httpAdapter.PackageResponseDTO
	if err := json.Unmarshal(r.Body, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Destination    string   `json:"destination"`
	Origin         string   `json:"origin,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	Passengers     int      `json:"passengers,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	TravelCategory string   `json:"travelCategory,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Destination: "Recife",
		Origin:      "GRU",
		StartDate:   "2025-06-10",
		EndDate:     "2025-06-15",
		Passengers:  2,
		Categories:  []string{"FLIGHT", "HOTEL"},
	}
}

// DefaultSearchParams returns valid search parameters for testing the use case directly.
func DefaultSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Destination: "Recife",
		Origin:      "GRU",
		StartDate:   "2025-06-10",
		EndDate:     "2025-06-15",
		Passengers:  2,
		Categories:  []domain.ServiceCategory{domain.CategoryFlight, domain.CategoryHotel},
	}
}

// CreateUseCase creates a search use case over provider, pinned to Today.
// If config is nil, only the clock is overridden.
func CreateUseCase(provider domain.SearchProvider, config *usecase.Config) usecase.SearchUseCase {
	cfg := usecase.Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewMockClock(Today)
	}
	return usecase.NewSearchUseCase(provider, &cfg)
}

// CreateSession creates a session with the stale guard on, pinned to Today.
// If config is nil, defaults are used.
func CreateSession(provider domain.SearchProvider, config *usecase.SessionConfig) *usecase.Session {
	cfg := usecase.DefaultSessionConfig()
	if config != nil {
		cfg = *config
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewMockClock(Today)
	}
	return usecase.NewSession(CreateUseCase(provider, nil), &cfg)
}
