package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	signInFailureLimit  = 10
	signInFailureWindow = 15 * time.Minute
)

// signInThrottle counts failed provider callbacks per client and blocks new sign-in attempts
// once limit failures fall inside window.
type signInThrottle struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	failures map[string][]time.Time
}

func newSignInThrottle(limit int, window time.Duration) *signInThrottle {
	return &signInThrottle{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

func (throttle *signInThrottle) blocked(key string, now time.Time) bool {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	return len(throttle.recentLocked(key, now)) >= throttle.limit
}

func (throttle *signInThrottle) recordFailure(key string, now time.Time) {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	throttle.failures[key] = append(throttle.recentLocked(key, now), now)
}

func (throttle *signInThrottle) clear(key string) {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	delete(throttle.failures, key)
}

func (throttle *signInThrottle) recentLocked(key string, now time.Time) []time.Time {
	threshold := now.Add(-throttle.window)
	kept := throttle.failures[key][:0]
	for _, failedAt := range throttle.failures[key] {
		if failedAt.After(threshold) {
			kept = append(kept, failedAt)
		}
	}
	if len(kept) == 0 {
		delete(throttle.failures, key)
		return nil
	}
	throttle.failures[key] = kept
	return kept
}

func clientKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.IP()); key != "" {
		return key
	}
	return "unknown"
}
