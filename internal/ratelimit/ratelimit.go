// Package ratelimit enforces the daily posting budget. The minimum
// interval between posts is the publication gate's job; this only caps
// the absolute number of posts per 24h window.
package ratelimit

import (
	"log/slog"
	"sync"
	"time"
)

// DailyLimiter counts posts against a fixed daily budget. A max of zero
// or less means unlimited.
type DailyLimiter struct {
	mu      sync.Mutex
	max     int
	count   int
	resetAt time.Time
}

func NewDailyLimiter(max int) *DailyLimiter {
	return &DailyLimiter{max: max}
}

// Allow reports whether another post fits in today's budget.
func (l *DailyLimiter) Allow(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset(now)

	if l.max > 0 && l.count >= l.max {
		slog.Warn("daily post limit reached", "used", l.count, "limit", l.max)
		return false
	}
	return true
}

// Record counts one published post.
func (l *DailyLimiter) Record(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset(now)
	l.count++
	slog.Debug("daily post budget", "used", l.count, "limit", l.max)
}

// Remaining returns how many posts are left today. Negative max reports -1
// (unlimited).
func (l *DailyLimiter) Remaining(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset(now)
	if l.max <= 0 {
		return -1
	}
	if l.count >= l.max {
		return 0
	}
	return l.max - l.count
}

func (l *DailyLimiter) checkReset(now time.Time) {
	if l.resetAt.IsZero() {
		l.resetAt = now.Add(24 * time.Hour)
		return
	}
	if now.After(l.resetAt) {
		slog.Info("resetting daily post counter", "posted", l.count)
		l.count = 0
		l.resetAt = now.Add(24 * time.Hour)
	}
}
