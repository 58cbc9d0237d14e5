package config

import (
	"context"
	"pcpro/pkg/apiclient"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PCAPI_BASE_URL", "PCAPI_TOKEN", "PCAPI_TIMEOUT", "PCAPI_HEADERS", "APIDOC_PORT", "APIDOC_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "http://localhost:5001", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.API.WithCredentials)
	assert.Empty(t, cfg.API.Headers)
	assert.Equal(t, []string{"*"}, cfg.Docs.AllowedOrigins)
	assert.Equal(t, ":8090", cfg.GetServerAddress())
	assert.False(t, cfg.HasLogin())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PCAPI_BASE_URL", "https://backend.staging.passculture.team/")
	t.Setenv("PCAPI_TOKEN", "abc")
	t.Setenv("PCAPI_TIMEOUT", "5s")
	t.Setenv("PCAPI_WITH_CREDENTIALS", "false")
	t.Setenv("PCAPI_HEADERS", "X-Team=pro, X-Env = staging, broken")
	t.Setenv("PCAPI_LOGIN_EMAIL", "pro@example.com")
	t.Setenv("PCAPI_LOGIN_PASSWORD", "secret")
	t.Setenv("APIDOC_ALLOWED_ORIGINS", "http://localhost:3000, https://pro.passculture.app")

	cfg := Load()
	assert.Equal(t, "https://backend.staging.passculture.team", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.API.WithCredentials)
	assert.Equal(t, map[string]string{"X-Team": "pro", "X-Env": "staging"}, cfg.API.Headers)
	assert.Equal(t, []string{"http://localhost:3000", "https://pro.passculture.app"}, cfg.Docs.AllowedOrigins)
	assert.True(t, cfg.HasLogin())

	client := cfg.ClientConfig()
	require.NoError(t, client.Validate())
	token, err := client.Token(context.Background(), apiclient.RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.Nil(t, client.Username)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PCAPI_TIMEOUT", "soon")
	t.Setenv("APIDOC_MAX_HEADER_BYTES", "lots")

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1<<20, cfg.Docs.MaxHeaderBytes)
}

func TestLoadRateLimit(t *testing.T) {
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_HEALTH_REQUESTS", "3")
	t.Setenv("RATE_LIMIT_WHITELISTED_IPS", "10.0.0.1")

	cfg := Load()
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 3, cfg.RateLimit.HealthRequests)
	assert.Equal(t, 60, cfg.RateLimit.DefaultRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.WindowDuration)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.RateLimit.WhitelistedIPs)
}
