package ratelimit

import (
	"net/http"

	"property-api/internal/response"

	"github.com/gin-gonic/gin"
)

// Middleware rejects requests over budget with the uniform error envelope.
func Middleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow() {
			response.JSON(c, "Too many requests", rl.GetStats(), http.StatusTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
