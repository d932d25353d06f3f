// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// limiterCache is a per-key rate limiter cache with double-check locking.
type limiterCache struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache(rps float64, burst int) *limiterCache {
	return &limiterCache{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// get returns the rate limiter for a key, creating one if needed.
func (lc *limiterCache) get(key string) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// maxTrackedIPs bounds the limiter cache; exceeding it resets all counters
// rather than growing without limit.
const maxTrackedIPs = 10000

func (lc *limiterCache) clearIfExceeds(maxSize int) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if len(lc.limiters) > maxSize {
		lc.limiters = make(map[string]*rate.Limiter)
	}
}

// RateLimiter applies a per-IP request rate limit. It protects the login
// and register forms from credential stuffing; the API server applies its
// own limits behind it.
type RateLimiter struct {
	cache *limiterCache
}

// NewRateLimiter creates a RateLimiter allowing rps requests per second
// with the given burst per client IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{cache: newLimiterCache(rps, burst)}
}

// Middleware returns the rate limiting middleware. Over-limit requests
// receive 429 with a plain-text body.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			rl.cache.clearIfExceeds(maxTrackedIPs)
			if !rl.cache.get(ip).Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests. Please slow down.", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the remote IP without the port. RealIP middleware has
// already resolved proxy headers by the time this runs.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
