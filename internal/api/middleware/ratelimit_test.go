package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func setupLimited(r rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.POST("/like-project", RateLimitPerClient(r, burst), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return e
}

func hit(e *gin.Engine, addr string) int {
	req := httptest.NewRequest(http.MethodPost, "/like-project", nil)
	req.RemoteAddr = addr
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr.Code
}

func TestRateLimit_BurstThenBlocked(t *testing.T) {
	e := setupLimited(rate.Limit(0.001), 2)

	assert.Equal(t, http.StatusOK, hit(e, "203.0.113.7:1000"))
	assert.Equal(t, http.StatusOK, hit(e, "203.0.113.7:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, "203.0.113.7:1000"))
}

func TestRateLimit_PerClient(t *testing.T) {
	e := setupLimited(rate.Limit(0.001), 1)

	assert.Equal(t, http.StatusOK, hit(e, "203.0.113.7:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, "203.0.113.7:2000"),
		"same address, different port shares the limiter")
	assert.Equal(t, http.StatusOK, hit(e, "198.51.100.9:1000"),
		"a different address gets its own limiter")
}
