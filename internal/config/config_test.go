package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prodmast.yaml")
	doc := `
start_path: /pricing
splash: once
auth_delay: 250ms
telemetry:
  endpoint: localhost:4318
  insecure: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/pricing", cfg.StartPath)
	assert.Equal(t, SplashOnce, cfg.Splash)
	assert.Equal(t, 250*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.SplashExitDelay, "default kept")
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "prodmast", cfg.Telemetry.ServiceName)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.NoError(t, cfg.Validate())
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse(nil, cfg))
	assert.Equal(t, Default(), cfg)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	err := Parse([]byte("splahs: off\n"), Default())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative auth delay", func(c *Config) { c.AuthDelay = -time.Second }},
		{"negative splash delay", func(c *Config) { c.SplashExitDelay = -1 }},
		{"unknown splash", func(c *Config) { c.Splash = "sometimes" }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"relative start", func(c *Config) { c.StartPath = "pricing" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
