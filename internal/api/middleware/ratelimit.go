package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/enesocakci/portfolio-backend/internal/api/httperr"
)

// RateLimitPerClient limits each client address to r events per second with
// the given burst. Limiters are kept per address for the process lifetime,
// which is acceptable for a single-instance portfolio backend.
func RateLimitPerClient(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(r, burst)
			limiters[key] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			httperr.JSON(c, http.StatusTooManyRequests, httperr.CodeRateLimited, "Too many requests, slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}
