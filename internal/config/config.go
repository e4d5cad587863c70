// Package config provides YAML-based configuration loading for breakout.
// World geometry and the frame step are fixed and not part of it.
package config

import (
	"time"
)

// Config contains all runtime configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	TUI      TUIConfig      `yaml:"tui"`
	Desktop  DesktopConfig  `yaml:"desktop"`
	Audio    AudioConfig    `yaml:"audio"`
	SSH      SSHConfig      `yaml:"ssh"`

	// Source is where the config was read from, "embedded" for the default.
	Source string `yaml:"-"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // terminal frontend only; empty = ~/.breakout/breakout.log
}

// GameplayConfig holds rule variations.
type GameplayConfig struct {
	// LegacyMultiBounce reflects the ball once per brick hit in a frame
	// instead of once per frame.
	LegacyMultiBounce bool `yaml:"legacy_multi_bounce"`
}

// TUIConfig configures the terminal frontend.
type TUIConfig struct {
	// HoldFrames is how many frames a movement key press counts as held.
	HoldFrames int        `yaml:"hold_frames"`
	Keys       KeysConfig `yaml:"keys"`
}

// KeysConfig lists the key names bound to each action, as reported by
// Bubble Tea (e.g. "enter", "esc", "left", "a", "ctrl+c").
type KeysConfig struct {
	Confirm []string `yaml:"confirm"`
	Cancel  []string `yaml:"cancel"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Quit    []string `yaml:"quit"`
}

// DesktopConfig configures the native window frontend.
type DesktopConfig struct {
	FontPath string `yaml:"font_path"`
}

// AudioConfig configures sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	// MaxSessions caps concurrent connections; each one runs its own game.
	MaxSessions int `yaml:"max_sessions"`
}
