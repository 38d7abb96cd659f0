package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/observability/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per matched route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTP(c.Request.Method, c.FullPath(), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
