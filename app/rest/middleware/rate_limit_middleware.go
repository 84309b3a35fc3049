package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.RWMutex
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := routeClass(c.Request().URL.Path) + ":" + c.RealIP()
			limit, burst := classLimits(c.Request().URL.Path)

			if !rl.allow(key, limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"code":        "RATE_LIMIT_EXCEEDED",
					"retry_after": rl.getRetryAfter(key),
				})
			}

			return next(c)
		}
	}
}

// routeClass buckets a path into one of the limit classes. Visitors are
// keyed by class and IP so one class's exhaustion never throttles another.
func routeClass(path string) string {
	switch {
	case strings.Contains(path, "/login"):
		return "login"
	case strings.Contains(path, "/register"):
		return "register"
	case strings.Contains(path, "/upload"):
		return "upload"
	default:
		return "default"
	}
}

// classLimits returns the per-class rate and burst. Auth endpoints are
// attack surface; upload descriptors are cheap but abusable.
func classLimits(path string) (rate.Limit, int) {
	switch routeClass(path) {
	case "login":
		return rate.Every(10 * time.Second), 5
	case "register":
		return rate.Every(30 * time.Second), 3
	case "upload":
		return rate.Every(2 * time.Second), 10
	default:
		return rate.Every(100 * time.Millisecond), 30
	}
}

func (rl *RateLimiter) allow(key string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[key]
	if !exists {
		rl.visitors[key] = &Visitor{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: time.Now(),
		}
		return true
	}

	visitor.lastSeen = time.Now()
	return visitor.limiter.Allow()
}

func (rl *RateLimiter) getRetryAfter(key string) int {
	// Reserve mutates limiter state, so the write lock is required even
	// though the reservation is cancelled immediately.
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[key]
	if !exists {
		return 0
	}

	reservation := visitor.limiter.Reserve()
	if !reservation.OK() {
		return 60
	}

	delay := reservation.Delay()
	reservation.Cancel()

	return int(delay.Seconds())
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, visitor := range rl.visitors {
			if time.Since(visitor.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
