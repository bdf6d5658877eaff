package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Auth.Provider)
	require.Equal(t, "Asia/Seoul", cfg.UI.Timezone)
	require.Equal(t, "02 Jan 2006", cfg.UI.DateFormat)
	require.False(t, cfg.UI.DemoMode)
	require.NotEmpty(t, cfg.Database.Path)
	require.Equal(t, "internal/database/migrations", cfg.Database.MigrationsPath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AINA_AUTH_PROVIDER", "remote")
	t.Setenv("AINA_AUTH_REMOTE_URL", "https://auth.example.org")
	t.Setenv("AINA_UI_DEMO_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "remote", cfg.Auth.Provider)
	require.Equal(t, "https://auth.example.org", cfg.Auth.RemoteURL)
	require.True(t, cfg.UI.DemoMode)
}

func TestRemoteProviderRequiresURL(t *testing.T) {
	t.Setenv("AINA_AUTH_PROVIDER", "remote")
	t.Setenv("AINA_AUTH_REMOTE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestConfigFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntimezone = \"Asia/Kuala_Lumpur\"\n"), 0o600))
	t.Setenv("AINA_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Asia/Kuala_Lumpur", cfg.UI.Timezone)
}
