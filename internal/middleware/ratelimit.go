package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

func (c RateLimitConfig) withDefaults() RateLimitConfig {
	if c.Capacity < 1 {
		c.Capacity = 1
	}
	if c.RefillTokens < 1 {
		c.RefillTokens = 1
	}
	if c.RefillInterval <= 0 {
		c.RefillInterval = time.Second
	}
	if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
		c.TTL = minTTL
	}
	if c.Prefix == "" {
		c.Prefix = "rl"
	}

	return c
}

// The bucket state lives in a redis hash so every replica shares the budget.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
local intervals = math.floor(elapsed / interval_ms)
if intervals > 0 then
	tokens = math.min(capacity, tokens + (intervals * refill_tokens))
	last_refill = last_refill + (intervals * interval_ms)
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type RateLimiter struct {
	cfg    RateLimitConfig
	client redis.Scripter
	logger *slog.Logger
	now    func() time.Time
}

func NewRateLimiter(cfg RateLimitConfig, client redis.Scripter, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		cfg:    cfg.withDefaults(),
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

type decision struct {
	allowed    bool
	remaining  int64
	retryAfter time.Duration
}

// Handler limits requests per client IP. Requests pass through when redis
// cannot be reached.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	if !l.cfg.Enabled || l.client == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.cfg.Prefix + ":ip:" + clientIP(r)

		d, err := l.take(r.Context(), key)
		if err != nil {
			l.logger.WarnContext(r.Context(), "rate limiter unavailable, allowing request", "key", key, "error", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Capacity))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(d.remaining, 10))

		if !d.allowed {
			secs := int(math.Ceil(d.retryAfter.Seconds()))
			writeError(w, r, http.StatusTooManyRequests, "Rate limit exceeded, retry later",
				http.Header{"Retry-After": []string{strconv.Itoa(secs)}})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) take(ctx context.Context, key string) (decision, error) {
	args := []any{
		l.now().UnixMilli(),
		l.cfg.Capacity,
		l.cfg.RefillTokens,
		l.cfg.RefillInterval.Milliseconds(),
		int64(l.cfg.TTL / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, l.client, []string{key}, args...).Int64Slice()
	if err != nil {
		return decision{}, err
	}
	if len(vals) != 3 {
		return decision{}, fmt.Errorf("unexpected rate limit script result %v", vals)
	}

	return decision{
		allowed:    vals[0] == 1,
		remaining:  vals[1],
		retryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

func clientIP(r *http.Request) string {
	// chi's RealIP middleware has already rewritten RemoteAddr when a proxy header is present
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if addr == "" {
		return "unknown"
	}

	return addr
}
