package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefull/backend/internal/testhelpers"
)

func TestRateLimiterIsAllowed(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Minute,
		Limit:     3,
		KeyPrefix: "test_rate",
	})

	for i := 0; i < 3; i++ {
		allowed, remaining, _, err := limiter.IsAllowed(context.Background(), "user-a")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, remaining, _, err := limiter.IsAllowed(context.Background(), "user-a")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)

	// Another user has a separate budget.
	allowed, _, _, err = limiter.IsAllowed(context.Background(), "user-b")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Minute,
		Limit:     1,
		KeyPrefix: "test_rate_mw",
	})

	router := gin.New()
	router.POST("/checkout", func(c *gin.Context) {
		c.Set("user_id", "user-a")
		c.Next()
	}, limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/checkout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/checkout", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitMiddlewareRequiresUser(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := NewRateLimiter(client, RateLimitConfig{Window: time.Minute, Limit: 1, KeyPrefix: "test_rate_nouser"})

	router := gin.New()
	router.POST("/checkout", limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/checkout", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
