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

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
database:
  host: "db"
  port: 6543
  user: "fyyur"
  password: "secret"
  dbname: "shows"
http_server:
  address: "0.0.0.0:9000"
  timeout: 2s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTPServer.Address)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)

	assert.Equal(t,
		"host=db port=6543 user=fyyur password=secret dbname=shows sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
database:
  user: "fyyur"
  dbname: "shows"
`)

	t.Setenv("DB_HOST", "override-host")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "override-host", cfg.Database.Host)
}
