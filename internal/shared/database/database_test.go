package database

import (
	"context"
	"net"
	"pcpro/internal/shared/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Addr: "redis.internal:6380", Password: "pw", DB: 2}}

	opts := redisOptions(cfg)
	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 3*time.Second, opts.ReadTimeout)
}

func TestInitRedisUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := &config.Config{Redis: config.RedisConfig{Addr: addr}}
	rdb, err := InitRedis(context.Background(), cfg)
	assert.Nil(t, rdb)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestHealthCheckWithoutRedis(t *testing.T) {
	assert.NoError(t, HealthCheck(context.Background(), nil))
}
