package middleware

import (
	"time"

	"jobready-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("RequestID"),
		}
		switch {
		case status >= 500:
			logger.Log.Errorw("HTTP request", fields...)
		case status >= 400:
			logger.Log.Warnw("HTTP request", fields...)
		default:
			logger.Log.Infow("HTTP request", fields...)
		}
	}
}
