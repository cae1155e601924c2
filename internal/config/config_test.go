package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Server.MaxConnections)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30, cfg.Game.RoomIdleTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Game.RoomIdleTimeoutDuration())
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
redis:
  addr: redis:6379
game:
  room_idle_timeout: 5
security:
  allowed_origins:
    - https://bingo.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Game.RoomIdleTimeoutDuration())
	assert.Equal(t, []string{"https://bingo.example.com"}, cfg.Security.AllowedOrigins)
	// Unset fields still get defaults
	assert.Equal(t, 1000, cfg.Server.MaxConnections)
	assert.Equal(t, 20, cfg.Security.MessageMaxPerSecond)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "3117")

	cfg := Default()
	assert.Equal(t, 3117, cfg.Server.Port)
}
