package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

// RequestLog emits one structured line per completed request.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	requestLog := log.With("middleware", "RequestLog")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestLog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}
