package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"jobready-backend/internal/delivery/http/response"
	"jobready-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit  int
	Window time.Duration
	// Key prefix for Redis, also separates local buckets.
	KeyPrefix string
	// Default: client IP
	KeyFunc func(*gin.Context) string
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter counts requests in Redis when a client is configured and falls
// back to in-process token buckets otherwise or when Redis errors.
type RateLimiter struct {
	redis *goredis.Client

	mu        sync.Mutex
	buckets   map[string]*localBucket
	lastPrune time.Time
}

func NewRateLimiter(client *goredis.Client) *RateLimiter {
	return &RateLimiter{
		redis:     client,
		buckets:   make(map[string]*localBucket),
		lastPrune: time.Now(),
	}
}

func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:ip:"}
}

// AIRateLimitConfig is the stricter budget for routes that call the
// completion gateway.
func AIRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:ai:"}
}

func (l *RateLimiter) Middleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		var (
			allowed   bool
			remaining int
			retry     time.Duration
		)
		if l.redis != nil {
			count, ttl, err := l.checkRedis(c.Request.Context(), key, cfg)
			if err == nil {
				allowed = count <= cfg.Limit
				remaining = cfg.Limit - count
				retry = ttl
			} else {
				logger.Log.Warnw("Rate limit store unavailable, using local buckets", "error", err)
				allowed, remaining, retry = l.checkLocal(key, cfg, time.Now())
			}
		} else {
			allowed, remaining, retry = l.checkLocal(key, cfg, time.Now())
		}

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(math.Ceil(retry.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logger.Log.Warnw("Rate limit exceeded", "key", key, "path", c.FullPath(), "request_id", c.GetString("RequestID"))
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRedis returns the request count in the current window and the time
// until the window resets.
func (l *RateLimiter) checkRedis(ctx context.Context, key string, cfg RateLimitConfig) (int, time.Duration, error) {
	ttlSeconds := int(cfg.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := l.redis.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, 0, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), time.Duration(ttl) * time.Second, nil
}

func (l *RateLimiter) checkLocal(key string, cfg RateLimitConfig, now time.Time) (bool, int, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > cfg.Window {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) > 2*cfg.Window {
				delete(l.buckets, k)
			}
		}
		l.lastPrune = now
	}

	b, ok := l.buckets[key]
	if !ok {
		every := cfg.Window / time.Duration(cfg.Limit)
		b = &localBucket{limiter: rate.NewLimiter(rate.Every(every), cfg.Limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	if !b.limiter.AllowN(now, 1) {
		return false, 0, cfg.Window / time.Duration(cfg.Limit)
	}
	return true, int(b.limiter.TokensAt(now)), 0
}
