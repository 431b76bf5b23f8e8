package middleware

import (
	"strconv"
	"time"

	"tourdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// NewMetrics records request counts and latencies per route. The route
// template is used as the label, not the raw path, to keep cardinality bounded.
func NewMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := strconv.Itoa(c.Response().Status)
			metrics.ObserveHTTPRequest(c.Request().Method, path, status, time.Since(start))

			return err
		}
	}
}
