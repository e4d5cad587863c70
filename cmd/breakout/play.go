package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

var flagFrontend string

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Long: `Start a game in the chosen frontend.

Controls:
  Left/A, Right/D - Move the paddle
  Enter           - Start, pause, resume, back to menu after game over
  Esc             - Quit from the menu or the game over screen
  Ctrl+C          - Quit at any time
  Ctrl+S          - Save a text screenshot (terminal only)

Examples:
  breakout play
  breakout play --frontend desktop
  breakout play --config ./my-breakout.yaml`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
	cmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to run (see 'breakout frontends')")
	return cmd
}

func runPlay(cmd *cobra.Command, _ []string) error {
	info, err := registry.Lookup(flagFrontend)
	if err != nil {
		return fmt.Errorf("%w, run 'breakout frontends' to list them", err)
	}

	logger, closer, err := openLogger(info.Terminal)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size for frontends drawing into it
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	fe, err := registry.Create(flagFrontend, registry.Env{
		Config: cfg,
		Logger: logger,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return err
	}

	cues := audio.New(cfg.Audio, logger)
	game := breakout.New(breakout.Options{LegacyMultiBounce: cfg.Gameplay.LegacyMultiBounce})
	id := session.ID(fmt.Sprintf("local-%d", time.Now().UnixNano()))
	sess := session.New(id, os.Getenv("USER"), game, logger, cues)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("session started", "frontend", info.Name, "config", cfg.Source, "audio", cues.Enabled())
	err = fe.Run(ctx, sess)
	logger.Info("session ended", "score", sess.Score(), "lives", sess.Lives(), "frames", game.Tick())
	return err
}

// openLogger logs to a file for frontends that own the terminal and to
// stderr otherwise.
func openLogger(terminal bool) (*log.Logger, io.Closer, error) {
	if terminal {
		return logging.OpenFile(cfg.LogFile(), cfg.Log.Level, "breakout")
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level, "breakout")
	return logger, io.NopCloser(os.Stderr), err
}
