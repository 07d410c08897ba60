package ratelimit

import (
	"sync"
	"time"
)

// RateLimiter enforces per-minute and per-hour request budgets over
// sliding windows. A limit of 0 disables that window.
type RateLimiter struct {
	enabled   bool
	perMinute int
	perHour   int

	minuteWindow []time.Time
	hourWindow   []time.Time
	mu           sync.Mutex
}

// New creates a rate limiter with the given limits
func New(perMinute, perHour int, enabled bool) *RateLimiter {
	return &RateLimiter{
		enabled:      enabled,
		perMinute:    perMinute,
		perHour:      perHour,
		minuteWindow: make([]time.Time, 0),
		hourWindow:   make([]time.Time, 0),
	}
}

// Allow reports whether another request fits the budget, recording it when
// it does.
func (rl *RateLimiter) Allow() bool {
	if !rl.enabled {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.cleanup(now)

	if rl.perMinute > 0 && len(rl.minuteWindow) >= rl.perMinute {
		return false
	}
	if rl.perHour > 0 && len(rl.hourWindow) >= rl.perHour {
		return false
	}

	rl.minuteWindow = append(rl.minuteWindow, now)
	rl.hourWindow = append(rl.hourWindow, now)
	return true
}

// cleanup removes expired entries from the time windows
func (rl *RateLimiter) cleanup(now time.Time) {
	rl.minuteWindow = filterTimes(rl.minuteWindow, now.Add(-1*time.Minute))
	rl.hourWindow = filterTimes(rl.hourWindow, now.Add(-1*time.Hour))
}

// filterTimes keeps only times after the cutoff
func filterTimes(times []time.Time, cutoff time.Time) []time.Time {
	result := make([]time.Time, 0, len(times))
	for _, t := range times {
		if t.After(cutoff) {
			result = append(result, t)
		}
	}
	return result
}

// Stats contains rate limiter statistics
type Stats struct {
	Enabled            bool `json:"enabled"`
	RequestsLastMinute int  `json:"requests_last_minute"`
	RequestsLastHour   int  `json:"requests_last_hour"`
	LimitPerMinute     int  `json:"limit_per_minute"`
	LimitPerHour       int  `json:"limit_per_hour"`
}

// GetStats returns current rate limiter statistics
func (rl *RateLimiter) GetStats() Stats {
	if !rl.enabled {
		return Stats{Enabled: false}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.cleanup(time.Now())

	return Stats{
		Enabled:            true,
		RequestsLastMinute: len(rl.minuteWindow),
		RequestsLastHour:   len(rl.hourWindow),
		LimitPerMinute:     rl.perMinute,
		LimitPerHour:       rl.perHour,
	}
}

// Reset clears all tracked requests (useful for testing)
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.minuteWindow = make([]time.Time, 0)
	rl.hourWindow = make([]time.Time, 0)
}
