package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LocalPath is the project-local config file, relative to the working directory.
const LocalPath = "configs/breakout.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.breakout/config.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are overlaid on the embedded default, so they only need the keys they change.
// A custom path must exist and be valid; the other locations are skipped when
// missing or broken.
func Load(customPath string) (Config, error) {
	base := embedded()

	// Try custom path first
	if customPath != "" {
		cfg, err := overlay(base, customPath)
		if err != nil {
			return base, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{UserPath(), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := overlay(base, path); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embedded parses the embedded default YAML.
func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg
}

// overlay reads path on top of a copy of base and validates the result.
func overlay(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := base.clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// clone copies c so that decoding into the copy never touches c's slices.
func (c Config) clone() Config {
	out := c
	out.TUI.Keys = KeysConfig{
		Confirm: slices.Clone(c.TUI.Keys.Confirm),
		Cancel:  slices.Clone(c.TUI.Keys.Cancel),
		Left:    slices.Clone(c.TUI.Keys.Left),
		Right:   slices.Clone(c.TUI.Keys.Right),
		Quit:    slices.Clone(c.TUI.Keys.Quit),
	}
	return out
}

// Validate checks value ranges. All problems are reported together, each
// wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		invalid("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if c.TUI.HoldFrames < 1 || c.TUI.HoldFrames > 120 {
		invalid("tui.hold_frames must be between 1 and 120, got %d", c.TUI.HoldFrames)
	}
	keys := map[string][]string{
		"confirm": c.TUI.Keys.Confirm,
		"cancel":  c.TUI.Keys.Cancel,
		"left":    c.TUI.Keys.Left,
		"right":   c.TUI.Keys.Right,
		"quit":    c.TUI.Keys.Quit,
	}
	for _, name := range []string{"confirm", "cancel", "left", "right", "quit"} {
		if len(keys[name]) == 0 {
			invalid("tui.keys.%s needs at least one key", name)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		invalid("audio.volume must be between 0 and 1, got %g", c.Audio.Volume)
	}

	if c.SSH.Address == "" {
		invalid("ssh.address is empty")
	}
	if c.SSH.IdleTimeout < 0 {
		invalid("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout)
	}
	if c.SSH.MaxSessions < 1 {
		invalid("ssh.max_sessions must be at least 1, got %d", c.SSH.MaxSessions)
	}

	return errors.Join(errs...)
}

// YAML renders the configuration as YAML.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// LogFile returns the terminal frontend log path.
func (c Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "breakout.log")
	}
	return "breakout.log"
}

// Dir returns ~/.breakout, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout")
}

// UserPath returns the path to the user config file, or empty if home is unavailable.
func UserPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
