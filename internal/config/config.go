// Package config holds runtime configuration: defaults, the optional TOML
// config file, and validation. CLI flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Style when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force styling on.
	ColorNever  ColorMode = "never"  // Disable styling entirely.
)

// Config holds all runtime settings. It is populated by [Default], then by
// [Load] from the config file, then mutated by CLI flags before being passed
// (by pointer) to the packages that need it.
type Config struct {
	// Behavior.
	DryRun       bool `toml:"-"`             // Flag-only: preview renames without performing them.
	IgnoreHidden bool `toml:"ignore_hidden"` // Skip dotfiles while sorting (SD-card index junk).

	// Watch mode.
	WatchDebounceMS int `toml:"watch_debounce_ms"` // Settle time before conforming a new file.

	// Display and logging.
	Verbose bool      `toml:"verbose"`
	Color   ColorMode `toml:"color"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		IgnoreHidden:    true,
		WatchDebounceMS: 500,
		Verbose:         false,
		Color:           ColorAuto,
	}
}

// Path returns the default config file location.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gpsort", "config.toml")
}

// Load reads the config file at path (or the default location when path is
// empty) over the defaults. A missing file is not an error; a malformed one
// is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum fields and numeric ranges.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.WatchDebounceMS < 0 {
		return errors.New("watch_debounce_ms must not be negative")
	}
	return nil
}
