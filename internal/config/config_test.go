package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPasetoKey = "0123456789abcdef0123456789abcdef" // 32 bytes

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PASETO_KEY", testPasetoKey)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, "taskboard", cfg.Database.DBName)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address())
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PASETO_KEY", testPasetoKey)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("TRUSTED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_InvalidPasetoKey(t *testing.T) {
	t.Setenv("PASETO_KEY", "too-short")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "PASETO_KEY")
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "taskboard",
		Password: "secret",
		DBName:   "taskboard",
		SSLMode:  "require",
	}

	connStr := cfg.ConnectionString()
	assert.True(t, strings.Contains(connStr, "host=db.internal"))
	assert.True(t, strings.Contains(connStr, "port=5433"))
	assert.True(t, strings.Contains(connStr, "sslmode=require"))
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("PASETO_KEY", testPasetoKey)
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
}
