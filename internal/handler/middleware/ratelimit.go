package middleware

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"stadium-scheduler/internal/handler/httperr"
	"stadium-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const visitorTTL = 3 * time.Minute

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter hands out one token bucket per client key.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    max(burst, 1),
		ttl:      visitorTTL,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// idle visitors are dropped lazily so no janitor goroutine is needed
	if now.Sub(rl.lastSweep) > rl.ttl {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit throttles by acting user when the header is present, by client IP otherwise.
// A non-positive rate disables it.
func RateLimit(cfg config.ServerConfig) gin.HandlerFunc {
	if cfg.RateLimitRPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	return func(c *gin.Context) {
		key := c.GetHeader(UserIDHeader)
		if key == "" {
			key = c.ClientIP()
		}
		if !limiter.Allow(key) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
