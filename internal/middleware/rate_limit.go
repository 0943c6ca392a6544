package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-roadmap-generator/pkg/response"
)

// RateLimit throttles LLM-backed routes with a shared token bucket. The
// refill rate and burst come from the rate_limit config section.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
