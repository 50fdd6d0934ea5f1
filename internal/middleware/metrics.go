package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"farmledger/internal/metrics"
)

// Metrics records request counts and latency per route template, so that
// /rooms/:id is one series no matter how many rooms exist. Unmatched routes
// are reported as "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
