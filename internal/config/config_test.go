package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredPostgres(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "db.local")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredPostgres(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "trivia-api", cfg.Name)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTPAddr)
	assert.Equal(t, 20*time.Second, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Minute, cfg.Redis.CategoryCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, []string{"Content-Type", "Authorization", "true"}, cfg.CORS.AllowedHeaders)
}

func TestLoadMissingPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRedisOverride(t *testing.T) {
	setRequiredPostgres(t)
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("CATEGORY_CACHE_TTL", "30s")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.CategoryCacheTTL)
}

func TestPostgresConnString(t *testing.T) {
	pg := Postgres{Host: "h", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "require", MaxConns: 4}
	assert.Equal(t, "host=h port=5433 user=u password=p dbname=d sslmode=require pool_max_conns=4", pg.ConnString())
	assert.Equal(t, "host=h port=5433 user=u password=p dbname=d sslmode=require", pg.DSN())
}
