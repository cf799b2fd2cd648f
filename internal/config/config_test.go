package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, ":memory:", cfg.Storage.Path)
	assert.Equal(t, "bcrypt", cfg.Auth.Hasher)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env: dev
storage:
  driver: sqlite
  path: ":memory:"
auth:
  hasher: plain
admin:
  username: boss
  password: hunter22
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "plain", cfg.Auth.Hasher)
	assert.Equal(t, "boss", cfg.Admin.Username)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "env: dev\n")
	t.Setenv("ENV", "staging")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "storage:\n  driver: postgres\n"))
	assert.ErrorContains(t, err, "storage.driver")

	_, err = Load(writeConfig(t, "auth:\n  hasher: md5\n"))
	assert.ErrorContains(t, err, "auth.hasher")
}
