package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/pkg/logger"
)

// Recovery panic恢复中间件，返回500错误
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					logger.F("request_id", GetRequestID(c)),
					logger.F("method", c.Request.Method),
					logger.F("path", c.Request.URL.Path),
					logger.F("ip", c.ClientIP()),
					logger.F("panic", fmt.Sprintf("%v", err)),
					logger.F("stack", string(debug.Stack())),
				)

				c.JSON(http.StatusInternalServerError, gin.H{
					"code":       http.StatusInternalServerError,
					"message":    "internal server error",
					"request_id": GetRequestID(c),
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
