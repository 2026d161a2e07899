package middleware

import (
	"time"

	"invoice-admin/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request durations per route template, so path
// parameters do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
