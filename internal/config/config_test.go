package config_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leocth/labrinth/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, int64(500), cfg.S3.MaxFileSizeMB)
	assert.Equal(t, runtime.NumCPU(), cfg.Validation.Workers)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LABRINTH_SERVER_ENVIRONMENT", "production")
	t.Setenv("LABRINTH_VALIDATION_WORKERS", "3")
	t.Setenv("LABRINTH_S3_CDN_URL", "https://cdn.example.com/data/")
	t.Setenv("LABRINTH_CORS_ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")
	t.Setenv("LABRINTH_DB_HOST", "db.internal")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, 3, cfg.Validation.Workers)
	assert.Equal(t, "https://cdn.example.com/data", cfg.S3.CDNURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Port)
}

func TestLoad_RejectsNonPositiveWorkers(t *testing.T) {
	t.Setenv("LABRINTH_VALIDATION_WORKERS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{Host: "h", Port: 1, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:1/n?sslmode=disable", d.DSN())
}

func TestS3Config_MaxFileSizeBytes(t *testing.T) {
	s := config.S3Config{MaxFileSizeMB: 2}
	assert.Equal(t, int64(2*1024*1024), s.MaxFileSizeBytes())
}
