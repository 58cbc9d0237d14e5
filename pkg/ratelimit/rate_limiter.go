package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimitType string

const (
	RateLimitTypeDefault   RateLimitType = "default"
	RateLimitTypeHealth    RateLimitType = "health"
	RateLimitTypeDocument  RateLimitType = "document"
	RateLimitTypeCatalogue RateLimitType = "catalogue"
)

// Config sets the allowance of each route family per window
type Config struct {
	Enabled           bool          `json:"enabled"`
	WindowDuration    time.Duration `json:"window_duration"`
	DefaultRequests   int           `json:"default_requests"`
	HealthRequests    int           `json:"health_requests"`
	DocumentRequests  int           `json:"document_requests"`
	CatalogueRequests int           `json:"catalogue_requests"`
	WhitelistedIPs    []string      `json:"whitelisted_ips"`
}

// Result represents rate limit check result
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

// fixedWindow counts hits in KEYS[1], which expires ARGV[1] ms after the
// first hit of the window. Returns the count and the remaining ttl.
var fixedWindow = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {current, ttl}
`)

// RateLimiter counts requests per client and route family in Redis
type RateLimiter struct {
	client redis.Scripter
	config *Config
	now    func() time.Time
}

func NewRateLimiter(client redis.Scripter, config *Config) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

// IsAllowed records one request from clientIP and reports whether it fits
// in the current window.
func (r *RateLimiter) IsAllowed(ctx context.Context, clientIP string, limitType RateLimitType) (*Result, error) {
	limit := r.getLimit(limitType)
	if !r.config.Enabled || r.isWhitelisted(clientIP) {
		return &Result{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit,
			ResetTime: r.now().Add(r.config.WindowDuration).Unix(),
		}, nil
	}

	key := fmt.Sprintf("pcpro:ratelimit:%s:%s", limitType, clientIP)
	return r.checkLimit(ctx, key, limit)
}

func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int) (*Result, error) {
	values, err := fixedWindow.Run(ctx, r.client, []string{key}, r.config.WindowDuration.Milliseconds()).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("redis eval failed: %w", err)
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("unexpected redis response: %v", values)
	}
	return r.result(values[0], values[1], limit), nil
}

func (r *RateLimiter) result(count, ttlMillis int64, limit int) *Result {
	if ttlMillis < 0 {
		ttlMillis = r.config.WindowDuration.Milliseconds()
	}
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetTime: r.now().Add(time.Duration(ttlMillis) * time.Millisecond).Unix(),
	}
}

func (r *RateLimiter) getLimit(limitType RateLimitType) int {
	switch limitType {
	case RateLimitTypeHealth:
		return r.config.HealthRequests
	case RateLimitTypeDocument:
		return r.config.DocumentRequests
	case RateLimitTypeCatalogue:
		return r.config.CatalogueRequests
	default:
		return r.config.DefaultRequests
	}
}

func (r *RateLimiter) isWhitelisted(ip string) bool {
	for _, whitelistedIP := range r.config.WhitelistedIPs {
		if ip == whitelistedIP {
			return true
		}
	}
	return false
}
