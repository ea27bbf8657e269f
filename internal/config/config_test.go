package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("APP_ROOT_URL", "https://itsm.example.com/")
	t.Setenv("DOWNLOAD_SECRET_DELAY_US", "500")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "https://itsm.example.com/", cfg.AppRootURL)
	assert.Equal(t, 500*time.Microsecond, cfg.Download.SecretMismatchDelay)
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "secret", cfg.Download.SecretField)
	assert.Equal(t, 200*time.Microsecond, cfg.Download.SecretMismatchDelay)
	assert.Equal(t, 0, cfg.Download.CacheSeconds)
	assert.Equal(t, 20.0, cfg.Download.RateLimitRPS)
	assert.Equal(t, 40, cfg.Download.RateLimitBurst)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("db_host: yaml-host\ndb_name: itsm\nminio_bucket: docs\n"), 0o600))
		t.Setenv("DB_NAME", "from-env")

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "yaml-host", cfg.Database.Host)
		assert.Equal(t, "from-env", cfg.Database.Name)
		assert.Equal(t, "docs", cfg.MinIO.Bucket)
		assert.Equal(t, "5432", cfg.Database.Port)
	})

	t.Run("dotenv", func(t *testing.T) {
		path := filepath.Join(dir, "config.env")
		require.NoError(t, os.WriteFile(path, []byte("DB_USER=env-user\nPORT=9090\n"), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "env-user", cfg.Database.User)
		assert.Equal(t, "9090", cfg.Port)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, (&AppConfig{Timezone: "Not/AZone"}).Location())
	assert.Equal(t, "Asia/Jakarta", (&AppConfig{Timezone: "Asia/Jakarta"}).Location().String())
}
