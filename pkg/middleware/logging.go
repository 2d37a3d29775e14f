package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bintrack/pkg/metrics"
)

// RequestLogger logs every request with structured fields and records
// the HTTP metrics. The log level follows the response status.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			duration := time.Since(start)

			var evt *zerolog.Event
			switch {
			case status >= 500:
				evt = log.Error()
			case status >= 400:
				evt = log.Warn()
			default:
				evt = log.Info()
			}
			evt.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("duration", duration).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Int64("bytes_out", c.Response().Size).
				Msg("request")

			// The route pattern keeps the metric label space bounded.
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(duration.Seconds())

			return nil
		}
	}
}
