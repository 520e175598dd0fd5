package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
}

// Health writes a health check response naming the configured search provider.
func Health(c echo.Context, provider string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "ok",
		Provider: provider,
	})
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
