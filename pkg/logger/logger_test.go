package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, getLogLevel(in), in)
	}
}

func TestLogHTTPErrorJSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")

	var buf bytes.Buffer
	l := NewWithWriter(&buf).WithOperation("getOffer").WithRequestID("req-1")
	l.LogHTTPError(context.Background(), "GET", "https://backend.test/offers/1", errors.New("boom"), 404)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "HTTP Error", rec["msg"])
	assert.Equal(t, "getOffer", rec["operation"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, float64(404), rec["status"])
	assert.Equal(t, "boom", rec["error"])
}

func TestLevelFiltersDebug(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer
	l := NewWithWriter(&buf)
	l.LogHTTPRequest(context.Background(), "GET", "/features", 200, time.Millisecond)
	assert.Empty(t, buf.String())

	l.LogTokenExpired(context.Background(), time.Unix(0, 0))
	assert.Contains(t, buf.String(), "Bearer Token Expired")
}
