package tui

import (
	"context"
	"path/filepath"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

func init() {
	registry.Register(registry.Info{
		Name:        "tui",
		Description: "terminal frontend (Bubble Tea)",
		Terminal:    true,
	}, newFrontend)
}

// frontend runs a session in the local terminal.
type frontend struct {
	opts Options
}

func newFrontend(env registry.Env) (registry.Frontend, error) {
	opts := Options{
		Keys:       env.Config.TUI.Keys,
		HoldFrames: env.Config.TUI.HoldFrames,
		Width:      env.Width,
		Height:     env.Height,
		Logger:     env.Logger,
	}
	if dir := config.Dir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}
	return &frontend{opts: opts}, nil
}

// Run implements registry.Frontend.
func (f *frontend) Run(ctx context.Context, sess *session.Session) error {
	return Run(ctx, sess, f.opts)
}
