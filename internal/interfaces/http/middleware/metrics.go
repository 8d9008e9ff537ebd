package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"campus-market.backend/pkg/metrics"
)

var observeHTTP = metrics.ObserveHTTP

// MetricsMiddleware records request counts and latency per route template
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observeHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
