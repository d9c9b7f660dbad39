package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"prodmast/internal/config"
	"prodmast/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prodmast.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_path: /about\ndebug: true\nauth_delay: 2s\n"), 0o600))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--start", "#/pricing", "--no-splash", "--debug=false"}))
	cfg, err := loadConfig(cmd, flags{configPath: path, start: "#/pricing", noSplash: true})
	require.NoError(t, err)

	assert.Equal(t, "#/pricing", cfg.StartPath)
	assert.Equal(t, config.SplashOff, cfg.Splash)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 2*time.Second, cfg.AuthDelay)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth_delay: -1s\n"), 0o600))

	_, err := loadConfig(newRootCmd(), flags{configPath: path})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestAppOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Splash = config.SplashOnce
	opts, err := appOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, ui.SplashOnce, opts.Splash)
	assert.Equal(t, cfg.AuthDelay, opts.AuthDelay)
	assert.Equal(t, "/", opts.StartPath)
}
