package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"ai-task-manager/pkg/response"
)

// RateLimit throttles requests per client IP using a token bucket.
// Limiters expire after an idle period so the table stays bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMinute := m.config.RateLimit.PerMinute
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](10000, nil, 10*time.Minute)
	limit := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, perMinute)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
