package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/breakout.yaml.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		TUI: TUIConfig{
			HoldFrames: 12,
			Keys: KeysConfig{
				Confirm: []string{"enter"},
				Cancel:  []string{"esc"},
				Left:    []string{"left", "a"},
				Right:   []string{"right", "d"},
				Quit:    []string{"ctrl+c"},
			},
		},
		Desktop: DesktopConfig{
			FontPath: "assets/RETRO.TTF",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     ".ssh/breakout_ed25519",
			IdleTimeout: 10 * time.Minute,
			MaxSessions: 32,
		},
		Source: "embedded",
	}
}
