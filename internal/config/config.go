// Package config loads the optional todopanes.toml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	appName        = "todopanes"
	configFileName = "config.toml"
)

// Config represents config.toml. Every field is optional.
type Config struct {
	TUI TUI `toml:"tui"`
	Log Log `toml:"log"`
}

// TUI holds interactive preferences.
type TUI struct {
	// Theme is "auto", "light" or "dark".
	Theme string `toml:"theme"`
	// Glyphs is "unicode" or "ascii".
	Glyphs string `toml:"glyphs"`
	// ConfirmDeleteList asks before a list (and its todos) is removed.
	ConfirmDeleteList bool `toml:"confirm-delete-list"`
}

type Log struct {
	// Path enables the debug log. Empty means no logging.
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		TUI: TUI{Theme: "auto", Glyphs: "unicode", ConfirmDeleteList: true},
		Log: Log{Level: "debug"},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/todopanes/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// Load reads path on top of Default. A missing file is not an error. An empty
// path means DefaultPath.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TODOPANES_THEME, TODOPANES_GLYPHS and
// TODOPANES_DEBUG_LOG when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv("TODOPANES_THEME")); v != "" {
		c.TUI.Theme = v
	}
	if v := strings.TrimSpace(getenv("TODOPANES_GLYPHS")); v != "" {
		c.TUI.Glyphs = v
	}
	if v := strings.TrimSpace(getenv("TODOPANES_DEBUG_LOG")); v != "" {
		c.Log.Path = v
	}
	c.normalize()
}

func (c *Config) normalize() {
	c.TUI.Theme = strings.ToLower(strings.TrimSpace(c.TUI.Theme))
	c.TUI.Glyphs = strings.ToLower(strings.TrimSpace(c.TUI.Glyphs))
	c.Log.Path = strings.TrimSpace(c.Log.Path)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.TUI.Theme == "" {
		c.TUI.Theme = "auto"
	}
	if c.TUI.Glyphs == "" {
		c.TUI.Glyphs = "unicode"
	}
	if c.Log.Level == "" {
		c.Log.Level = "debug"
	}
}

func (c Config) Validate() error {
	switch c.TUI.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("tui.theme: unknown value %q (want auto|light|dark)", c.TUI.Theme)
	}
	switch c.TUI.Glyphs {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("tui.glyphs: unknown value %q (want unicode|ascii)", c.TUI.Glyphs)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown value %q (want debug|info|warn|error)", c.Log.Level)
	}
	return nil
}
