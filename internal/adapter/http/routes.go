package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all sourcing API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *SourcingHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SourcingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	searches := api.Group("/searches")
	searches.POST("", h.Search)
	searches.GET("/latest", h.Latest)

	api.POST("/pricing/preview", h.PricePreview)

	pkg := api.Group("/package")
	pkg.GET("", h.GetPackage)
	pkg.POST("/items", h.AddPackageItem)
	pkg.DELETE("/items/:id", h.RemovePackageItem)
	pkg.GET("/share", h.SharePackage)

	api.GET("/offers/:id/share", h.ShareOffer)

	opps := api.Group("/opportunities")
	opps.GET("", h.ListOpportunities)
	opps.POST("", h.SaveOpportunity)
	opps.DELETE("/:id", h.RemoveOpportunity)
}
