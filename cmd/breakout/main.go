// breakout is a brick-breaking arcade game for the terminal, a desktop
// window or SSH clients.
//
// Usage:
//
//	breakout play             - Play in this terminal (or --frontend desktop)
//	breakout serve            - Start SSH server for remote play
//	breakout frontends        - List frontends built into this binary
//	breakout sim              - Run a headless autopilot game
//	breakout config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ./configs/breakout.yaml, ~/.breakout/config.yaml)
//	--log-level <lvl>   - Override log.level
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "breakout",
		Short: "Breakout - bounce the ball, break the bricks",
		Long: `Breakout is the classic brick-breaking game. Move the paddle with the
arrow keys (or A/D), keep the ball in play and clear the wall.

Available commands:
  play       - Play locally (terminal by default)
  serve      - Start SSH server for remote play
  frontends  - Show the frontends this binary supports
  sim        - Run a headless game with the autopilot
  config     - Print the effective configuration

Examples:
  breakout play
  breakout play --frontend desktop
  breakout serve --ssh :2222
  breakout sim --frames 5000`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newFrontendsCmd())
	root.AddCommand(newSimCmd())
	root.AddCommand(newConfigCmd())
	return root
}

func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded
	return nil
}
