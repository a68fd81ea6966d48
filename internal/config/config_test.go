package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origURL := os.Getenv("DATABASE_URL")
	defer os.Setenv("DATABASE_URL", origURL)

	os.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/annotations")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("UPLOAD_DIR", "/tmp/uploads")
	os.Setenv("MINIO_USE_SSL", "true")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("UPLOAD_DIR")
		os.Unsetenv("MINIO_USE_SSL")
	}()

	cfg := Load()

	assert.Equal(t, "postgres://user:pass@db:5432/annotations", cfg.Database.URL)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/tmp/uploads", cfg.Storage.UploadDir)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("UPLOAD_DIR")
	os.Unsetenv("STORAGE_BACKEND")
	os.Unsetenv("REDIS_ADDR")

	cfg := Load()

	assert.Equal(t, "./annotations.db", cfg.Database.URL)
	assert.Equal(t, "./uploaded_files", cfg.Storage.UploadDir)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
