package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per caller. Requests carrying a
// merchant id share one bucket per merchant; anonymous requests fall
// back to one bucket per remote address.
type RateLimiter struct {
	callers map[string]*caller
	mu      sync.RWMutex
	rate    rate.Limit
	burst   int
}

type caller struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop.
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*caller),
		rate:    r,
		burst:   b,
	}

	go rl.cleanupCallers()

	return rl
}

// cleanupCallers removes buckets idle for several minutes.
func (rl *RateLimiter) cleanupCallers() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for key, c := range rl.callers {
			if time.Since(c.lastSeen) > 3*time.Minute {
				delete(rl.callers, key)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) getCaller(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, exists := rl.callers[key]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.callers[key] = &caller{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// Middleware returns the rate limiting middleware.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(MerchantIDHeader)
			if key == "" {
				key = r.RemoteAddr
			}

			if !rl.getCaller(key).Allow() {
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, map[string]interface{}{
					"error":   ErrorCodeRateLimitExceeded,
					"message": ErrorMessageRateLimitExceeded,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
