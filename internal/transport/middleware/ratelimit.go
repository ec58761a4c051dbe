package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rbradwell/language-learning/pkg/ctxutil"
)

// RateLimiter is a per-client token bucket limiter. Authenticated requests
// are keyed by user ID, anonymous ones by remote IP.
type RateLimiter struct {
	perMinute int
	idleAfter time.Duration
	now       func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter allows perMinute requests per client with bursts of the same size.
// Buckets idle for longer than idleAfter are dropped by Sweep.
func NewRateLimiter(perMinute int, idleAfter time.Duration) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		idleAfter: idleAfter,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
	}
}

// Limit rejects requests over the limit with 429 and a Retry-After hint.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientKey(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	if rl.perMinute <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	limit := float64(rl.perMinute)
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: limit, lastSeen: now}
		rl.buckets[key] = b
	}

	b.tokens = min(limit, b.tokens+now.Sub(b.lastSeen).Seconds()*limit/60)
	b.lastSeen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) retryAfterSeconds() int {
	return 60/max(rl.perMinute, 1) + 1
}

// Sweep drops idle buckets and returns how many were removed.
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleAfter)
	removed := 0
	for key, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, key)
			removed++
		}
	}
	return removed
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
