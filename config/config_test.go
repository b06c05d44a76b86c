package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
db:
  name: library_test
rate_limit:
  requests: 5
  window: 10s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "library_test", cfg.Database.Name)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	// 未出现在文件中的项保留默认值
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("LIBRARY_SERVER_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 70000\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_LogFormat(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: 8080, BodyLimit: 1024},
		RateLimit: RateLimitConfig{Requests: 1, Window: time.Second},
		Log:       LogConfig{Level: "info", Format: "xml"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Log.Format = "console"
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "library", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=library sslmode=disable TimeZone=UTC", c.DSN())
}
