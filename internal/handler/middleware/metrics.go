package middleware

import (
	"strconv"
	"time"

	"spotlight-ledger/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics observes latency per route template, so path parameters do not explode cardinality.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
