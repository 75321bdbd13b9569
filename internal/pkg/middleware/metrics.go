package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/observability"
)

// MetricsMiddleware records request counts and latency per route template
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			labels := []string{c.Request().Method, route, strconv.Itoa(status)}
			observability.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			observability.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
