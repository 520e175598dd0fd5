package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs HTTP requests on completion.
// It also places a request-scoped logger into the request context so that
// use case logs carry the same request_id.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := GetRequestID(c)

			req := c.Request()
			scoped := log.WithRequestID(reqID)
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), scoped)))

			if err := next(c); err != nil {
				// Let Echo's error handler write the response
				c.Error(err)
			}

			duration := time.Since(start)
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = scoped.Error()
			case status >= 400:
				event = scoped.Warn()
			default:
				event = scoped.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
