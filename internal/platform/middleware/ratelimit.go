package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// DefaultSweepInterval is how often RateLimit drops buckets that have
// refilled completely.
const DefaultSweepInterval = time.Minute

// RateLimitConfig configures RateLimit. KeyFunc picks the bucket for a
// request and defaults to the client IP. A non-positive RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	KeyFunc           func(c echo.Context) string
	SweepInterval     time.Duration

	now func() time.Time
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	lastFill time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	if cfg.BurstSize < 1 {
		cfg.BurstSize = 1
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c echo.Context) string { return c.RealIP() }
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	return &limiter{cfg: cfg, buckets: make(map[string]*bucket), lastSweep: cfg.now()}
}

// level returns the token count as of now. Caller holds b.mu.
func (b *bucket) level(now time.Time, rate, burst float64) float64 {
	tokens := b.tokens + now.Sub(b.lastFill).Seconds()*rate
	if tokens > burst {
		tokens = burst
	}
	return tokens
}

type limiter struct {
	cfg       RateLimitConfig
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// sweep drops buckets that are full again; a full bucket behaves exactly
// like a fresh one. Caller holds l.mu.
func (l *limiter) sweep(now time.Time) {
	burst := float64(l.cfg.BurstSize)
	for key, b := range l.buckets {
		b.mu.Lock()
		full := b.level(now, l.cfg.RequestsPerSecond, burst) >= burst
		b.mu.Unlock()
		if full {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

func (l *limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// take reports whether key may proceed and, if not, how many seconds until a
// token is available.
func (l *limiter) take(key string) (bool, int) {
	now := l.cfg.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.cfg.SweepInterval {
		l.sweep(now)
	}
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.BurstSize), lastFill: now}
		l.buckets[key] = b
	}
	l.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = b.level(now, l.cfg.RequestsPerSecond, float64(l.cfg.BurstSize))
	b.lastFill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	return false, int((1-b.tokens)/l.cfg.RequestsPerSecond) + 1
}

// RateLimit applies a token bucket per key and answers 429 with Retry-After
// once a bucket is drained.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	l := newLimiter(cfg)
	cfg = l.cfg
	limit := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', -1, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limit)
			ok, retryAfter := l.take(cfg.KeyFunc(c))
			if !ok {
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
