package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/pkg/logger"
)

// Logging HTTP请求日志中间件
func Logging(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []logger.Field{
			logger.F("request_id", GetRequestID(c)),
			logger.F("method", c.Request.Method),
			logger.F("path", path),
			logger.F("query", query),
			logger.F("status", statusCode),
			logger.F("ip", c.ClientIP()),
			logger.F("latency_ms", latency.Milliseconds()),
		}
		if userID, exists := c.Get("user_id"); exists {
			fields = append(fields, logger.F("user_id", userID))
		}

		switch {
		case statusCode >= 500:
			if len(c.Errors) > 0 {
				fields = append(fields, logger.F("error", c.Errors.String()))
			}
			log.Error("HTTP request failed with server error", fields...)
		case statusCode >= 400:
			log.Warn("HTTP request failed with client error", fields...)
		default:
			log.Info("HTTP request completed", fields...)
		}
	}
}
