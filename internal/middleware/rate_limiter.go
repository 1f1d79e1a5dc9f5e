package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter IP维度的速率限制器
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int

	cleanupInterval time.Duration
	lastCleanup     time.Time
}

// NewRateLimiter 创建速率限制器
func NewRateLimiter(perSecond, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:        make(map[string]*rate.Limiter),
		rate:            rate.Limit(perSecond),
		burst:           burst,
		cleanupInterval: 10 * time.Minute,
		lastCleanup:     time.Now(),
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// 定期重建map防止无限增长
	if time.Since(rl.lastCleanup) > rl.cleanupInterval {
		rl.limiters = make(map[string]*rate.Limiter)
		rl.lastCleanup = time.Now()
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Middleware 限流中间件
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":       http.StatusTooManyRequests,
				"message":    "too many requests",
				"request_id": GetRequestID(c),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
