package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line can carry it
//  2. RequestLogger, which logs every request including recovered panics
//  3. Recover, which turns handler panics into 500 responses
//
// Call it before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.Use(Chain(log)...)
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log *logger.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
