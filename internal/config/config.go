// Package config loads the YAML configuration, overlaying a user file on the
// embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"backdrop/internal/theme"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	Window    WindowConfig                 `yaml:"window"`
	Scheduler SchedulerConfig              `yaml:"scheduler"`
	Theme     ThemeConfig                  `yaml:"theme"`
	Variants  map[string]map[string]string `yaml:"variants"`
	Log       LogConfig                    `yaml:"log"`
}

// WindowConfig sizes the window host.
type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	TPS     int    `yaml:"tps"`
	Overlay bool   `yaml:"overlay"`
}

// SchedulerConfig selects and paces variants.
type SchedulerConfig struct {
	Variant          string `yaml:"variant"`
	ResizeDebounceMS int    `yaml:"resize_debounce_ms"`
	Seed             int64  `yaml:"seed"`
}

// ThemeConfig holds the color palettes.
type ThemeConfig struct {
	Mode     string                       `yaml:"mode"`
	Palettes map[string]map[string]string `yaml:"palettes"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the embedded defaults and overlays path when it is non-empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window.tps %d", ErrInvalid, c.Window.TPS)
	}
	if c.Scheduler.ResizeDebounceMS < 0 {
		return fmt.Errorf("%w: scheduler.resize_debounce_ms %d", ErrInvalid, c.Scheduler.ResizeDebounceMS)
	}
	if _, ok := c.Theme.Palettes[c.Theme.Mode]; !ok && len(c.Theme.Palettes) > 0 {
		return fmt.Errorf("%w: theme.mode %q has no palette", ErrInvalid, c.Theme.Mode)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level; empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}

// Debounce returns the resize debounce. A configured zero maps to a negative
// duration, which the scheduler reads as no debouncing.
func (s SchedulerConfig) Debounce() time.Duration {
	if s.ResizeDebounceMS == 0 {
		return -1
	}
	return time.Duration(s.ResizeDebounceMS) * time.Millisecond
}

// Params returns the parameters configured for variant name.
func (c *Config) Params(name string) map[string]string {
	return c.Variants[name]
}

// SetParam sets one variant parameter, allocating maps as needed.
func (c *Config) SetParam(variant, key, value string) {
	if c.Variants == nil {
		c.Variants = map[string]map[string]string{}
	}
	if c.Variants[variant] == nil {
		c.Variants[variant] = map[string]string{}
	}
	c.Variants[variant][key] = value
}

// NewTheme builds the theme described by the palettes and mode.
func (c *Config) NewTheme() *theme.Theme {
	palettes := make(map[string]theme.Palette, len(c.Theme.Palettes))
	for mode, p := range c.Theme.Palettes {
		palettes[mode] = theme.Palette(p)
	}
	return theme.New(palettes, c.Theme.Mode)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
