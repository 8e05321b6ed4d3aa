package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/multitool_api/internal/utils"
)

// RateLimitMessage is the body message of a 429 response.
const RateLimitMessage = "Too many requests from this IP, please try again later."

// Decision is the outcome of one limiter check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// Limiter counts requests per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// RateLimitMiddleware rejects clients that exceed the limiter's quota with 429.
// Limiter failures let the request through.
func RateLimitMiddleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("ip", c.ClientIP()).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("RateLimit-Reset", strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds()))))

		if !d.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds()))))
			utils.Error(c, http.StatusTooManyRequests, RateLimitMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}

func decide(count int64, max int, resetIn time.Duration) Decision {
	remaining := max - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= int64(max),
		Limit:     max,
		Remaining: remaining,
		ResetIn:   resetIn,
	}
}

// WindowCounter is the store behind RedisLimiter.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RedisLimiter shares counters across instances through Redis.
type RedisLimiter struct {
	store  WindowCounter
	window time.Duration
	max    int
	prefix string
}

// NewRedisLimiter allows max requests per key per window.
func NewRedisLimiter(store WindowCounter, window time.Duration, max int) *RedisLimiter {
	return &RedisLimiter{store: store, window: window, max: max, prefix: "ratelimit:"}
}

// Allow implements Limiter.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, ttl, err := r.store.IncrWindow(ctx, r.prefix+key, r.window)
	if err != nil {
		return Decision{}, err
	}
	return decide(count, r.max, ttl), nil
}

// MemoryLimiter keeps per-key counters in process memory.
type MemoryLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
	window   time.Duration
	max      int
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewMemoryLimiter allows max requests per key per window. Expired counters
// are swept in the background until Close is called.
func NewMemoryLimiter(window time.Duration, max int) *MemoryLimiter {
	rl := &MemoryLimiter{
		attempts: make(map[string]*attemptInfo),
		window:   window,
		max:      max,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Allow implements Limiter.
func (r *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	info, exists := r.attempts[key]
	// Reset if window expired
	if !exists || now.Sub(info.firstAt) >= r.window {
		info = &attemptInfo{firstAt: now}
		r.attempts[key] = info
	}
	info.count++

	return decide(int64(info.count), r.max, info.firstAt.Add(r.window).Sub(now)), nil
}

// Close stops the background sweep.
func (r *MemoryLimiter) Close() {
	r.once.Do(func() { close(r.stop) })
}

func (r *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(r.window)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *MemoryLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for key, info := range r.attempts {
		if now.Sub(info.firstAt) >= r.window {
			delete(r.attempts, key)
		}
	}
}
