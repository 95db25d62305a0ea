// Package config loads the optional rgbclock.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/rgbclock/pkg/clockface"
	"github.com/go-drift/rgbclock/pkg/graphics"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "rgbclock.yaml"

// Defaults and limits.
const (
	SchemaVersion = "v1"

	DefaultWidth     = 500
	DefaultHeight    = 500
	DefaultFormat    = "png"
	DefaultAddr      = ":8080"
	DefaultFPS       = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	MinFPS = 1
	MaxFPS = 120
)

// Config represents rgbclock.yaml.
type Config struct {
	Version string        `yaml:"version,omitempty"`
	Clock   ClockConfig   `yaml:"clock"`
	Surface SurfaceConfig `yaml:"surface"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// ClockConfig configures the face.
type ClockConfig struct {
	Radius       float64 `yaml:"radius,omitempty"`
	DisplayHands bool    `yaml:"display_hands,omitempty"`
	Center       *Point  `yaml:"center,omitempty"` // nil centers on the surface
}

// Point is a surface coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SurfaceConfig sizes the drawing surface in pixels.
type SurfaceConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// OutputConfig controls file output for render and watch.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	Path   string `yaml:"path,omitempty"`
}

// ServerConfig controls the preview server.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
	FPS  int    `yaml:"fps,omitempty"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the file at path, which must exist.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path comes from the --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadOptional reads rgbclock.yaml from dir if present. A missing file
// yields the defaults.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Parse(nil)
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and environment overrides, and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = SchemaVersion
	}
	if cfg.Clock.Radius == 0 {
		cfg.Clock.Radius = clockface.DefaultRadius
	}
	if cfg.Surface.Width == 0 {
		cfg.Surface.Width = DefaultWidth
	}
	if cfg.Surface.Height == 0 {
		cfg.Surface.Height = DefaultHeight
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if cfg.Output.Path == "" {
		cfg.Output.Path = "clock." + cfg.Output.Format
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.FPS == 0 {
		cfg.Server.FPS = DefaultFPS
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("RGBCLOCK_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("RGBCLOCK_ADDR"); val != "" {
		cfg.Server.Addr = val
	}
	if val := os.Getenv("RGBCLOCK_FPS"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid RGBCLOCK_FPS: must be an integer, got %q", val)
		}
		cfg.Server.FPS = i
	}
	return nil
}

// Validate checks the configuration after defaults were applied.
func (c *Config) Validate() error {
	if err := validateVersion(c.Version); err != nil {
		return err
	}

	if c.Clock.Radius <= clockface.HoursRingInset {
		return fmt.Errorf("clock.radius must be greater than %d, got %g", clockface.HoursRingInset, c.Clock.Radius)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Surface.Width, c.Surface.Height)
	}
	if c.Clock.Center == nil {
		diameter := 2 * c.Clock.Radius
		if float64(c.Surface.Width) < diameter || float64(c.Surface.Height) < diameter {
			return fmt.Errorf("surface %dx%d is too small for a face of radius %g",
				c.Surface.Width, c.Surface.Height, c.Clock.Radius)
		}
	}

	switch c.Output.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("output.format must be png or svg, got %q", c.Output.Format)
	}

	if c.Server.FPS < MinFPS || c.Server.FPS > MaxFPS {
		return fmt.Errorf("server.fps must be between %d and %d, got %d", MinFPS, MaxFPS, c.Server.FPS)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// validateVersion accepts "1", "1.2", "v1.2.0" and so on, as long as the
// major version matches SchemaVersion.
func validateVersion(version string) error {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", version)
	}
	if semver.Major(v) != SchemaVersion {
		return fmt.Errorf("unsupported config version %s (want %s.x)", semver.Canonical(v), SchemaVersion)
	}
	return nil
}

// RendererOptions converts the clock section to renderer options.
func (c *Config) RendererOptions() clockface.Options {
	opts := clockface.Options{
		Radius:       c.Clock.Radius,
		DisplayHands: c.Clock.DisplayHands,
	}
	if c.Clock.Center != nil {
		opts.Center = &graphics.Offset{X: c.Clock.Center.X, Y: c.Clock.Center.Y}
	}
	return opts
}

// SurfaceSize returns the surface size as a graphics.Size.
func (c *Config) SurfaceSize() graphics.Size {
	return graphics.Size{Width: float64(c.Surface.Width), Height: float64(c.Surface.Height)}
}
