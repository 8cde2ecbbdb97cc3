package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyFunc picks the bucket a request draws from.
type KeyFunc func(*gin.Context) string

// KeyBySessionOrIP keys staff by their session subject and everyone else by
// client IP. The prefixes keep the two namespaces apart.
func KeyBySessionOrIP() KeyFunc {
	return func(c *gin.Context) string {
		if s := SessionFrom(c); s != nil && s.AuthID != "" {
			return "auth:" + s.AuthID
		}
		return "ip:" + c.ClientIP()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a process-local token bucket per key. Idle buckets are
// swept every few thousand lookups.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn KeyFunc
	match func(*gin.Context) bool

	mu       sync.Mutex
	visitors map[string]*visitor
	ttl      time.Duration
	lookups  uint64
}

// NewRateLimiter returns a limiter allowing rps sustained and burst at once.
// burst below 1 is raised to 1.
func NewRateLimiter(rps float64, burst int, keyFn KeyFunc) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	if keyFn == nil {
		keyFn = KeyBySessionOrIP()
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		visitors: make(map[string]*visitor),
		ttl:      10 * time.Minute,
	}
}

// Only restricts the limiter to requests for which match returns true.
func (rl *RateLimiter) Only(match func(*gin.Context) bool) *RateLimiter {
	rl.match = match
	return rl
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Sweep before the lookup so a stale bucket for key is replaced too.
	rl.lookups++
	if rl.lookups >= 5000 {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// Handler enforces the limit. Idempotent replays are exempt; a retry of an
// accepted submission must not be refused.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsReplay(c) || (rl.match != nil && !rl.match(c)) {
			c.Next()
			return
		}
		lim := rl.limiterFor(rl.keyFn(c))
		if lim.Allow() {
			c.Next()
			return
		}
		retry := 1
		if rl.rps > 0 {
			if secs := int(1/float64(rl.rps) + 0.5); secs > 1 {
				retry = secs
			}
		}
		c.Header("Retry-After", strconv.Itoa(retry))
		abortJSON(c, http.StatusTooManyRequests, "too_many_requests", "rate limit exceeded")
	}
}
