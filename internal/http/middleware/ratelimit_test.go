package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/config"
)

func fixedClock(start time.Time) (*time.Time, func() time.Time) {
	now := start
	return &now, func() time.Time { return now }
}

func TestLimiterBlocksAboveLimit(t *testing.T) {
	limiter := NewLimiter(config.RateLimitPolicy{Limit: 5, Window: 15 * time.Minute})
	now, clock := fixedClock(time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC))
	limiter.now = clock

	for i := 0; i < 5; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("attempt %d blocked, want allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("sixth attempt allowed, want blocked")
	}

	// A different client is unaffected.
	if !limiter.Allow("10.0.0.2") {
		t.Fatal("other client blocked")
	}

	*now = now.Add(15 * time.Minute)
	if !limiter.Allow("10.0.0.1") {
		t.Fatal("attempt after window reset blocked")
	}
}

func TestRateLimitMiddlewareResponds429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewLimiter(config.RateLimitPolicy{Limit: 1, Window: time.Minute})

	router := gin.New()
	router.Use(RateLimit(limiter))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req2.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(second, req2)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}
}
