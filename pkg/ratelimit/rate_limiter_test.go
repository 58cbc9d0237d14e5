package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryScripter stands in for Redis: every script call increments the
// counter of its key, like the fixed window script does.
type memoryScripter struct {
	mu     sync.Mutex
	counts map[string]int64
	keys   []string
	err    error
}

func newMemoryScripter() *memoryScripter {
	return &memoryScripter{counts: map[string]int64{}}
}

func (m *memoryScripter) run(keys []string) *redis.Cmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewCmdResult(nil, m.err)
	}
	m.keys = append(m.keys, keys[0])
	m.counts[keys[0]]++
	return redis.NewCmdResult([]interface{}{m.counts[keys[0]], int64(30000)}, nil)
}

func (m *memoryScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return m.run(keys)
}

func (m *memoryScripter) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return m.run(keys)
}

func (m *memoryScripter) EvalRO(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return m.run(keys)
}

func (m *memoryScripter) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return m.run(keys)
}

func (m *memoryScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult([]bool{true}, nil)
}

func (m *memoryScripter) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func testConfig() *Config {
	return &Config{
		Enabled:           true,
		WindowDuration:    time.Minute,
		DefaultRequests:   10,
		HealthRequests:    2,
		DocumentRequests:  5,
		CatalogueRequests: 20,
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestIsAllowedCountsPerWindow(t *testing.T) {
	store := newMemoryScripter()
	limiter := NewRateLimiter(store, testConfig())
	limiter.now = fixedNow
	ctx := context.Background()

	first, err := limiter.IsAllowed(ctx, "10.0.0.7", RateLimitTypeHealth)
	require.NoError(t, err)
	assert.Equal(t, &Result{Allowed: true, Limit: 2, Remaining: 1, ResetTime: fixedNow().Add(30 * time.Second).Unix()}, first)

	second, err := limiter.IsAllowed(ctx, "10.0.0.7", RateLimitTypeHealth)
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)

	third, err := limiter.IsAllowed(ctx, "10.0.0.7", RateLimitTypeHealth)
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)

	other, err := limiter.IsAllowed(ctx, "10.0.0.8", RateLimitTypeHealth)
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	assert.Equal(t, "pcpro:ratelimit:health:10.0.0.7", store.keys[0])
}

func TestIsAllowedSkipsRedis(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "disabled", mutate: func(c *Config) { c.Enabled = false }},
		{name: "whitelisted", mutate: func(c *Config) { c.WhitelistedIPs = []string{"10.0.0.7"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			store := newMemoryScripter()
			limiter := NewRateLimiter(store, cfg)

			result, err := limiter.IsAllowed(context.Background(), "10.0.0.7", RateLimitTypeDocument)
			require.NoError(t, err)
			assert.True(t, result.Allowed)
			assert.Equal(t, 5, result.Limit)
			assert.Empty(t, store.keys)
		})
	}
}

func TestIsAllowedRedisFailure(t *testing.T) {
	store := newMemoryScripter()
	store.err = errors.New("connection refused")
	limiter := NewRateLimiter(store, testConfig())

	_, err := limiter.IsAllowed(context.Background(), "10.0.0.7", RateLimitTypeDefault)
	assert.ErrorContains(t, err, "redis eval failed")
}

func TestGetRateLimitType(t *testing.T) {
	assert.Equal(t, RateLimitTypeHealth, getRateLimitType("/health"))
	assert.Equal(t, RateLimitTypeHealth, getRateLimitType("/ping"))
	assert.Equal(t, RateLimitTypeDocument, getRateLimitType("/openapi.json"))
	assert.Equal(t, RateLimitTypeDocument, getRateLimitType("/swagger/*any"))
	assert.Equal(t, RateLimitTypeCatalogue, getRateLimitType("/operations/:group/:id"))
	assert.Equal(t, RateLimitTypeDefault, getRateLimitType("/metrics"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.DefaultRequests = 1
	engine := gin.New()
	engine.Use(Middleware(NewRateLimiter(newMemoryScripter(), cfg)))
	engine.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.1.1.1")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	rec := request("192.0.2.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = request("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")

	assert.Equal(t, http.StatusOK, request("192.0.2.2").Code)
}

type failingChecker struct{}

func (failingChecker) IsAllowed(context.Context, string, RateLimitType) (*Result, error) {
	return nil, errors.New("redis down")
}

func TestMiddlewareCheckFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Middleware(failingChecker{}))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
