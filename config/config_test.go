package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"healthhub-directory/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, config.DefaultSourceURL, cfg.Directory.SourceURL)
	assert.Zero(t, cfg.Directory.FetchTimeout)
	assert.Equal(t, "/placeholder.svg", cfg.Directory.PlaceholderURL)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 20.0, cfg.Suggest.RateLimit)
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"APP_PORT=9090\nDIRECTORY_SOURCE_URL=http://feed.local/doctors.json\nSESSION_STORE=redis\nSESSION_TTL=5m\n",
	), 0o600))

	t.Setenv("APP_PORT", "7070")
	t.Setenv("DIRECTORY_FETCH_TIMEOUT", "3s")

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.Port, "environment wins over the file")
	assert.Equal(t, "http://feed.local/doctors.json", cfg.Directory.SourceURL)
	assert.Equal(t, 3*time.Second, cfg.Directory.FetchTimeout)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	t.Setenv("DIRECTORY_FETCH_TIMEOUT", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoad_InvalidSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "half an hour")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL")
}
