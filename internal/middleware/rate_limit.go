package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legal-practice-assistant/pkg/response"
)

// RateLimit rejects requests above the configured rate with 429. A nil
// limiter (rate disabled) passes everything through.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter != nil && !mw.limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "RateLimit: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}
