package ratelimiter

import (
	"sync"
	"time"
)

// Config is the env-driven limiter configuration assembled in cmd/api.
type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// FixedWindowRateLimiter counts requests per client within a fixed
// window and rejects once the limit is hit. Counters reset when the
// window rolls over.
type FixedWindowRateLimiter struct {
	sync.Mutex
	hits        map[string]int
	limit       int
	window      time.Duration
	windowStart time.Time
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		hits:        make(map[string]int),
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
	}
}

// Allow reports whether the client may proceed; when denied it also
// returns how long until the window resets.
func (rl *FixedWindowRateLimiter) Allow(client string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := time.Now()
	if now.Sub(rl.windowStart) >= rl.window {
		rl.hits = make(map[string]int)
		rl.windowStart = now
	}

	if rl.hits[client] >= rl.limit {
		return false, rl.window - now.Sub(rl.windowStart)
	}
	rl.hits[client]++
	return true, 0
}
