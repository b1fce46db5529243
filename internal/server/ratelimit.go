package server

import (
	"fmt"
	"net/http"
	"net/netip"
	"strconv"
	"sync"
	"time"

	"github.com/conneroisu/bizconsult/internal/logging"
)

// RateLimiter implements per-client token bucket rate limiting
type RateLimiter struct {
	buckets     map[string]*TokenBucket
	bucketMutex sync.Mutex
	config      *RateLimitConfig
	logger      logging.Logger
	now         func() time.Time

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// TokenBucket represents a token bucket for rate limiting
type TokenBucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

const (
	bucketExpiry    = 10 * time.Minute
	cleanupInterval = 5 * time.Minute
)

// NewRateLimiter creates a new rate limiter and starts its cleanup loop
func NewRateLimiter(config *RateLimitConfig, logger logging.Logger) *RateLimiter {
	if config == nil {
		config = DefaultSecurityConfig().RateLimiting
	}
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := *config
	if cfg.RequestsPerMinute <= 0 || cfg.BurstSize <= 0 {
		cfg.Enabled = false
	}

	rl := &RateLimiter{
		buckets: make(map[string]*TokenBucket),
		config:  &cfg,
		logger:  logger,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go rl.cleanupExpiredBuckets()

	return rl
}

// Check consumes a token for key (usually the client IP)
func (rl *RateLimiter) Check(key string) RateLimitResult {
	if !rl.config.Enabled {
		return RateLimitResult{Allowed: true, Remaining: rl.config.BurstSize}
	}

	rl.bucketMutex.Lock()
	defer rl.bucketMutex.Unlock()

	now := rl.now()
	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = &TokenBucket{tokens: float64(rl.config.BurstSize), lastRefill: now}
		rl.buckets[key] = bucket
	}
	bucket.lastAccess = now
	rl.refill(bucket, now)

	if bucket.tokens >= 1 {
		bucket.tokens--
		return RateLimitResult{Allowed: true, Remaining: int(bucket.tokens)}
	}

	perToken := time.Minute / time.Duration(rl.config.RequestsPerMinute)
	missing := 1 - bucket.tokens
	return RateLimitResult{
		Allowed:    false,
		RetryAfter: time.Duration(missing * float64(perToken)),
	}
}

func (rl *RateLimiter) refill(bucket *TokenBucket, now time.Time) {
	elapsed := now.Sub(bucket.lastRefill)
	if elapsed <= 0 {
		return
	}
	bucket.tokens += elapsed.Minutes() * float64(rl.config.RequestsPerMinute)
	if capacity := float64(rl.config.BurstSize); bucket.tokens > capacity {
		bucket.tokens = capacity
	}
	bucket.lastRefill = now
}

func (rl *RateLimiter) cleanupExpiredBuckets() {
	defer close(rl.done)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.performCleanup()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) performCleanup() {
	rl.bucketMutex.Lock()
	defer rl.bucketMutex.Unlock()

	now := rl.now()
	for key, bucket := range rl.buckets {
		if now.Sub(bucket.lastAccess) > bucketExpiry {
			delete(rl.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine. Calling it more than once is safe.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
		<-rl.done
	})
}

// ActiveBuckets returns the number of tracked clients.
func (rl *RateLimiter) ActiveBuckets() int {
	rl.bucketMutex.Lock()
	defer rl.bucketMutex.Unlock()
	return len(rl.buckets)
}

// RateLimitMiddleware limits requests per client IP. Forwarding headers
// count only from trusted proxies. Rejected requests get 429 with a
// Retry-After header.
func RateLimitMiddleware(limiter *RateLimiter, trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trusted)
			result := limiter.Check(ip)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.config.RequestsPerMinute))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfterSeconds(result.RetryAfter)))
				limiter.logger.Warn(r.Context(), nil, "Rate limit exceeded",
					"client_ip", ip,
					"path", r.URL.Path,
					"method", r.Method)
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
