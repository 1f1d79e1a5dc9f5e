package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/pkg/jwt"
	"github.com/tunewave/server/pkg/logger"
)

// Auth JWT认证中间件，验证通过后将user_id、user_email与user_role写入上下文
func Auth(jwtManager *jwt.Manager, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			log.Warn("JWT validation failed",
				logger.F("request_id", GetRequestID(c)),
				logger.Err(err),
			)
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireRole 角色校验中间件，必须在Auth之后使用
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, _ := c.Get("user_role")
		roleStr, ok := role.(string)
		if !ok {
			abortUnauthorized(c, "unauthorized")
			return
		}
		if _, ok := allowed[roleStr]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"code":       http.StatusForbidden,
				"message":    "insufficient role",
				"request_id": GetRequestID(c),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":       http.StatusUnauthorized,
		"message":    message,
		"request_id": GetRequestID(c),
	})
	c.Abort()
}
