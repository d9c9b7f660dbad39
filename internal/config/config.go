// Package config loads the shell's YAML configuration. Values in the file
// override the defaults; command-line flags override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Splash policies accepted in the splash key.
const (
	SplashEveryMount = "every-mount"
	SplashOnce       = "once"
	SplashOff        = "off"
)

// Config is the full configuration.
type Config struct {
	StartPath       string          `yaml:"start_path"`
	Splash          string          `yaml:"splash"`
	SplashExitDelay time.Duration   `yaml:"splash_exit_delay"`
	AuthDelay       time.Duration   `yaml:"auth_delay"`
	FrameRate       int             `yaml:"frame_rate"`
	LogFile         string          `yaml:"log_file"`
	Debug           bool            `yaml:"debug"`
	Telemetry       TelemetryConfig `yaml:"telemetry"`
}

// TelemetryConfig configures trace export. An empty Endpoint falls back to
// OTEL_EXPORTER_OTLP_ENDPOINT; with neither set tracing is off.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StartPath:       "/",
		Splash:          SplashEveryMount,
		SplashExitDelay: 1500 * time.Millisecond,
		AuthDelay:       1500 * time.Millisecond,
		FrameRate:       30,
		Telemetry: TelemetryConfig{
			ServiceName: "prodmast",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not set.
// Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var problems []string
	if !strings.HasPrefix(c.StartPath, "/") && !strings.HasPrefix(c.StartPath, "#") {
		problems = append(problems, fmt.Sprintf("start_path %q must begin with / or #", c.StartPath))
	}
	switch c.Splash {
	case SplashEveryMount, SplashOnce, SplashOff:
	default:
		problems = append(problems, fmt.Sprintf("splash %q must be one of %s, %s, %s", c.Splash, SplashEveryMount, SplashOnce, SplashOff))
	}
	if c.SplashExitDelay < 0 {
		problems = append(problems, "splash_exit_delay must not be negative")
	}
	if c.AuthDelay < 0 {
		problems = append(problems, "auth_delay must not be negative")
	}
	if c.FrameRate < 1 || c.FrameRate > 120 {
		problems = append(problems, fmt.Sprintf("frame_rate %d must be between 1 and 120", c.FrameRate))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
