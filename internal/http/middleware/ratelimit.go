package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/config"
)

// Limiter is a fixed-window counter keyed by client address. Counters live
// in process; the window resets once its duration elapses.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string]*windowEntry
	now    func() time.Time
}

type windowEntry struct {
	start time.Time
	count int
}

func NewLimiter(policy config.RateLimitPolicy) *Limiter {
	return &Limiter{
		limit:  policy.Limit,
		window: policy.Window,
		hits:   make(map[string]*windowEntry),
		now:    time.Now,
	}
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.hits[key]
	if !ok || now.Sub(entry.start) >= l.window {
		l.hits[key] = &windowEntry{start: now, count: 1}
		return true
	}
	entry.count++
	return entry.count <= l.limit
}

func RateLimit(limiter *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, try again later")
			return
		}
		c.Next()
	}
}
