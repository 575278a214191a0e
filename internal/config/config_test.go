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
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
redis:
  addr: redis:6379
  db: 2
auth:
  jwt_secret: test-secret
  token_ttl: 48
game:
  starting_lives: 2
  hand_size: 7
  sound: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenTTLDuration())
	assert.Equal(t, 2, cfg.Game.StartingLives)
	assert.Equal(t, 7, cfg.Game.HandSize)
	assert.True(t, cfg.Game.Sound)
}

func TestLoadFillsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Game.StartingLives)
	assert.Equal(t, 9, cfg.Game.HandSize)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("does/not/exist.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 1790, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Game.StartingLives)
	assert.Equal(t, 9, cfg.Game.HandSize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTLDuration())
}
