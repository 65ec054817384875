package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "SQLITE_PATH", "DB_DSN", "REDIS_ADDR", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "STORAGE_TZ"} {
		unsetenv(t, k)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, "petcare.db", cfg.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "pet-care-tracker", cfg.AppName)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", " Redis ")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("STORAGE_KEY_PREFIX", "petcare:")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "petcare:", cfg.KeyPrefix)
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")
	_, err := Load()
	assert.ErrorIs(t, err, ErrUnknownBackend)

	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DB_DSN", "")
	_, err = Load()
	assert.ErrorIs(t, err, ErrMissingDSN)

	t.Setenv("DB_DSN", "postgres://localhost/petcare?sslmode=disable")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoad_Timezone(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("STORAGE_TZ", "America/New_York")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.Location().String())

	t.Setenv("STORAGE_TZ", "Mars/Olympus")
	_, err = Load()
	assert.ErrorIs(t, err, ErrUnknownTZ)
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ParseLocation(" UTC ")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

// unsetenv deja la variable sin definir y la restaura al terminar el test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
