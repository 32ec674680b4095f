package middleware

import (
	"log/slog"
	"net/http"

	"stagepass/internal/infra/redisx"

	"github.com/gin-gonic/gin"
)

// LoginRateLimit throttles credential endpoints by client IP. When the
// limiter backend is unreachable the request passes through; availability
// wins over strictness here.
func LoginRateLimit(limiter *redisx.LoginLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("login rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many login attempts, try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
