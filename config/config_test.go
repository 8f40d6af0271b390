package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	// AppConfig is a package global; start each test from a clean slate.
	AppConfig = Config{}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_URL", "CRON_SECRET", "DB_HOST", "DB_PASSWORD"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	path := writeConfig(t, `
server:
  port: "9090"
  base_url: "https://wipes.example.com"
cache:
  dir: "`+filepath.Join(dir, "cache")+`"
scraper:
  fetch_timeout: "15s"
  browser_enabled: true
cron:
  secret: "file-secret"
`)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.Equal(t, "https://wipes.example.com", AppConfig.Server.BaseURL)
	assert.Equal(t, "file-secret", AppConfig.Cron.Secret)
	assert.Equal(t, 15*time.Second, AppConfig.Scraper.FetchTimeout)
	assert.Equal(t, 30*time.Second, AppConfig.Scraper.BrowserTimeout)
	assert.Equal(t, 2*time.Second, AppConfig.Scraper.RedditMinDelay)
	assert.True(t, AppConfig.Scraper.BrowserEnabled)
	assert.DirExists(t, AppConfig.Cache.Dir)
	assert.False(t, AppConfig.Database.Enabled())
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_URL", "CRON_SECRET", "DB_HOST", "DB_PASSWORD"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := writeConfig(t, `
cache:
  dir: "`+filepath.Join(t.TempDir(), "cache")+`"
`)
	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, "http://localhost:8080", AppConfig.Server.BaseURL)
	assert.Equal(t, "dev-secret", AppConfig.Cron.Secret)
	assert.NotEmpty(t, AppConfig.Scraper.UserAgent)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CRON_SECRET", "env-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("BASE_URL", "")
	os.Unsetenv("BASE_URL")

	path := writeConfig(t, `
server:
  port: "9090"
database:
  dbname: "wipetime"
cache:
  dir: "`+filepath.Join(t.TempDir(), "cache")+`"
cron:
  secret: "file-secret"
`)
	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "3000", AppConfig.Server.Port)
	assert.Equal(t, "env-secret", AppConfig.Cron.Secret)
	assert.Equal(t, "db.internal", AppConfig.Database.Host)
	assert.Equal(t, "hunter2", AppConfig.Database.Password)
	assert.True(t, AppConfig.Database.Enabled())
}

func TestLoadConfigMissingFile(t *testing.T) {
	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoadConfigBadDuration(t *testing.T) {
	path := writeConfig(t, `
scraper:
  fetch_timeout: "soon"
`)
	assert.Error(t, LoadConfig(path))
}
