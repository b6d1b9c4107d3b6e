package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Config captures the optional user settings stored in config.toml.
type Config struct {
	// DataDir overrides the OS data directory that holds the task file.
	DataDir string `toml:"data_dir"`
	// Color is one of auto, always, or never.
	Color string `toml:"color"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidColorMode indicates the color setting is not recognized.
var ErrInvalidColorMode = errors.New("config.color must be auto, always, or never")

// DefaultPath is where later looks for its configuration.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "later", "config.toml")
}

// DefaultDataHome is the platform's per-user data directory, or "" when it
// cannot be determined.
func DefaultDataHome() string {
	return xdg.DataHome
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.DataDir = strings.TrimSpace(c.DataDir)
	if c.Color == "" {
		c.Color = ColorAuto
	} else {
		c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	}
}

// Validate ensures the configuration can guide later's behavior.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return ErrInvalidColorMode
	}
}

// DataDirOr returns the directory holding the task file: the configured
// override if any, otherwise dataHome.
func (c Config) DataDirOr(dataHome string) string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return dataHome
}

// Load reads configuration from fsys. Missing files return a default config.
func Load(fsys afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
