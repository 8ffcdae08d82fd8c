package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "TABLES_COUNT", "REDIS_ADDR", "IDEMPOTENCY_TTL", "CORS_ORIGINS", "RABBITMQ_URL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10, cfg.TablesCount)
	assert.Equal(t, 10*time.Minute, cfg.IdempotencyTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "pos.orders", cfg.RabbitExchange)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TABLES_COUNT", "24")
	t.Setenv("IDEMPOTENCY_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://pos.example.com")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.TablesCount)
	assert.Equal(t, 30*time.Second, cfg.IdempotencyTTL)
	assert.Equal(t, []string{"http://localhost:5173", "https://pos.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TABLES_COUNT", "many")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TABLES_COUNT", "0")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("TABLES_COUNT", "")
	t.Setenv("IDEMPOTENCY_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	// godotenv only fills variables that are absent, not ones set to ""
	t.Setenv("GRPC_ADDR", "")
	require.NoError(t, os.Unsetenv("GRPC_ADDR"))
	t.Setenv("LOG_LEVEL", "warn")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRPC_ADDR=:7070\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.GRPCAddr)
	// real environment wins over the file
	assert.Equal(t, "warn", cfg.LogLevel)
}
