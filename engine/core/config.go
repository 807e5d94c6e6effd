package core

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/lumen/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config for the host run. The GL version and profile are requirements,
// not hints: window creation fails if the platform cannot provide them.
type Config struct {
	Title         string     `toml:"title"`
	Width         int        `toml:"width"`
	Height        int        `toml:"height"`
	VSync         bool       `toml:"vsync"`
	ClearColor    [4]float32 `toml:"clear_color"` // RGBA
	GLMajor       int        `toml:"gl_major"`
	GLMinor       int        `toml:"gl_minor"`
	CoreProfile   bool       `toml:"core_profile"`
	CaptureCursor bool       `toml:"capture_cursor"`
	LogLevel      string     `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Title:       "lumen",
		Width:       1280,
		Height:      720,
		VSync:       true,
		ClearColor:  colors.Charcoal,
		GLMajor:     4,
		GLMinor:     1,
		CoreProfile: true,
		LogLevel:    "info",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.GLMajor < 3 || c.GLMinor < 0 {
		return fmt.Errorf("config: OpenGL %d.%d is not supported, need 3.2 or newer", c.GLMajor, c.GLMinor)
	}
	if c.GLMajor == 3 && c.GLMinor < 2 && c.CoreProfile {
		return fmt.Errorf("config: core profile needs OpenGL 3.2 or newer, got %d.%d", c.GLMajor, c.GLMinor)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level: %w", err)
	}
	return lvl, nil
}
