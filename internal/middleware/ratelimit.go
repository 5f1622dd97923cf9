package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/loadouthq/setups/internal/model"
)

// RateLimiter implements fixed-window rate limiting keyed by caller.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int           // requests per window
	interval time.Duration // window length
	cleanup  time.Duration // sweep interval for stale windows
	stopChan chan struct{}
}

type window struct {
	count   int
	startAt time.Time
}

// RateLimitConfig holds rate limiter configuration.
type RateLimitConfig struct {
	Limit    int           // requests per window (default 120)
	Interval time.Duration // window length (default 1 minute)
	Cleanup  time.Duration // sweep interval (default 5 minutes)
}

// NewRateLimiter creates a rate limiter and starts its sweep goroutine.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Limit == 0 {
		cfg.Limit = 120
	}
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		windows:  make(map[string]*window),
		limit:    cfg.Limit,
		interval: cfg.Interval,
		cleanup:  cfg.Cleanup,
		stopChan: make(chan struct{}),
	}

	go rl.sweepLoop()

	return rl
}

// Stop stops the sweep goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopChan:
			return
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-2 * rl.interval)
	for key, w := range rl.windows {
		if w.startAt.Before(cutoff) {
			delete(rl.windows, key)
		}
	}
}

// Allow reports whether a request for the given key is allowed, along with
// the remaining quota and the time the current window resets.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetAt time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.windows[key]
	if !exists || now.Sub(w.startAt) >= rl.interval {
		w = &window{startAt: now}
		rl.windows[key] = w
	}

	resetAt = w.startAt.Add(rl.interval)
	if w.count >= rl.limit {
		return false, 0, resetAt
	}

	w.count++
	return true, rl.limit - w.count, resetAt
}

// RateLimit returns a middleware that applies rate limiting keyed by user ID
// when authenticated, falling back to the remote address.
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := GetUserID(r.Context())
			if key == "" {
				key = r.RemoteAddr
			}

			allowed, remaining, resetAt := limiter.Allow(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if !allowed {
				retryAfter := int(time.Until(resetAt).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
