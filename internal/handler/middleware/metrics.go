package middleware

import (
	"strconv"
	"time"

	"stadium-scheduler/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware labels requests by route template so path params do not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
