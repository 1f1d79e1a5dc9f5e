package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Limits.MaxPlaylistsPerUser)
	assert.Equal(t, 25, cfg.Limits.MaxSongsPerPlaylist)
	assert.Equal(t, "*/10 * * * *", cfg.Notifier.CronSpec)
	assert.Equal(t, 15*time.Minute, cfg.Notifier.VerifyTTL)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  addr: ":9090"
jwt:
  secret: file-secret
limits:
  max_playlists_per_user: 10
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 10, cfg.Limits.MaxPlaylistsPerUser)
	// untouched defaults survive
	assert.Equal(t, 25, cfg.Limits.MaxSongsPerPlaylist)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TW_SERVER_ADDR", ":7070")
	t.Setenv("TW_JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}
