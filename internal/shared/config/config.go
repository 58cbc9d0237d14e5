package config

import (
	"fmt"
	"os"
	"pcpro/pkg/apiclient"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the client tools
type Config struct {
	GinMode  string
	LogLevel string

	// Backend connection
	API APIConfig

	// Credentials used by proctl to open a session
	Login LoginConfig

	// Documentation server
	Docs DocsConfig

	// Optional request throttling for the documentation server
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// APIConfig holds the pcapi connection settings
type APIConfig struct {
	BaseURL         string
	Version         string
	Token           string
	Username        string
	Password        string
	WithCredentials bool
	Timeout         time.Duration
	Headers         map[string]string
}

// LoginConfig holds the pro account used for sign-in
type LoginConfig struct {
	Email    string
	Password string
}

// DocsConfig holds the documentation server configuration
type DocsConfig struct {
	Port           string
	Title          string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
}

// RedisConfig holds the Redis connection backing the rate limiter
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	WindowDuration    time.Duration
	DefaultRequests   int
	HealthRequests    int
	DocumentRequests  int
	CatalogueRequests int
	WhitelistedIPs    []string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		API: APIConfig{
			BaseURL:         strings.TrimRight(getEnv("PCAPI_BASE_URL", "http://localhost:5001"), "/"),
			Version:         getEnv("PCAPI_VERSION", "1.0.0"),
			Token:           getEnv("PCAPI_TOKEN", ""),
			Username:        getEnv("PCAPI_USERNAME", ""),
			Password:        getEnv("PCAPI_PASSWORD", ""),
			WithCredentials: getBoolEnv("PCAPI_WITH_CREDENTIALS", true),
			Timeout:         getDurationEnv("PCAPI_TIMEOUT", 30*time.Second),
			Headers:         getHeadersEnv("PCAPI_HEADERS"),
		},

		Login: LoginConfig{
			Email:    getEnv("PCAPI_LOGIN_EMAIL", ""),
			Password: getEnv("PCAPI_LOGIN_PASSWORD", ""),
		},

		Docs: DocsConfig{
			Port:           getEnv("APIDOC_PORT", "8090"),
			Title:          getEnv("APIDOC_TITLE", "pass Culture pro API"),
			AllowedOrigins: getStringSliceEnv("APIDOC_ALLOWED_ORIGINS", []string{"*"}),
			ReadTimeout:    getDurationEnv("APIDOC_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("APIDOC_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getDurationEnv("APIDOC_IDLE_TIMEOUT", 60*time.Second),
			MaxHeaderBytes: getIntEnv("APIDOC_MAX_HEADER_BYTES", 1<<20), // 1 MB
		},

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		RateLimit: RateLimitConfig{
			Enabled:           getBoolEnv("RATE_LIMIT_ENABLED", false),
			WindowDuration:    getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests:   getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			HealthRequests:    getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 12),
			DocumentRequests:  getIntEnv("RATE_LIMIT_DOCUMENT_REQUESTS", 30),
			CatalogueRequests: getIntEnv("RATE_LIMIT_CATALOGUE_REQUESTS", 120),
			WhitelistedIPs:    getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},
	}
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// ClientConfig converts the backend settings into an apiclient.Config
func (c *Config) ClientConfig() apiclient.Config {
	return apiclient.Config{
		BaseURL:         c.API.BaseURL,
		Version:         c.API.Version,
		WithCredentials: c.API.WithCredentials,
		Token:           apiclient.Static(c.API.Token),
		Username:        apiclient.Static(c.API.Username),
		Password:        apiclient.Static(c.API.Password),
		Headers:         c.API.Headers,
		Timeout:         c.API.Timeout,
	}
}

// HasLogin reports whether sign-in credentials are configured
func (c *Config) HasLogin() bool {
	return c.Login.Email != "" && c.Login.Password != ""
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// getHeadersEnv reads "Name=value" pairs separated by commas
func getHeadersEnv(key string) map[string]string {
	headers := map[string]string{}
	for _, pair := range getStringSliceEnv(key, nil) {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return headers
}

// IsProduction returns true if the tools run in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// GetServerAddress returns the documentation server listen address
func (c *Config) GetServerAddress() string {
	return ":" + c.Docs.Port
}

// GetDocsURL returns the local URL of the served OpenAPI document
func (c *Config) GetDocsURL() string {
	return fmt.Sprintf("http://localhost:%s/openapi.json", c.Docs.Port)
}
