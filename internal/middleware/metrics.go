package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/song-catalog/internal/metrics"
)

// HTTPMetrics records a counter and latency histogram observation for
// every request that passes through it, labelled by method, registered
// route and final status code.
func HTTPMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				// Run Echo's error handler now so the recorded status
				// matches what the client saw.
				c.Error(err)
			}
			m.RecordRequest(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))
			return nil
		}
	}
}
