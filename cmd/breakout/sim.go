package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

var (
	flagFrames int
	flagFrom   string
)

// simReport is what sim prints.
type simReport struct {
	Frames   int               `yaml:"frames"`
	Hash     string            `yaml:"hash"`
	Snapshot breakout.Snapshot `yaml:"snapshot"`
}

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless game with the autopilot",
		Long: `Run the game without a frontend. The autopilot starts a round and keeps
the paddle under the ball until the frame budget runs out or the game is
over, then prints the final state as YAML. Two runs with the same flags
print the same hash. A saved report can be passed to --from to continue
that game.

Examples:
  breakout sim
  breakout sim --frames 10000 --log-level debug
  breakout sim --frames 600 > half.yaml && breakout sim --from half.yaml`,
		Args: cobra.NoArgs,
		RunE: runSim,
	}
	cmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum frames to simulate")
	cmd.Flags().StringVar(&flagFrom, "from", "", "Continue from a report printed by an earlier sim")
	return cmd
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, "breakout-sim")
	if err != nil {
		return err
	}

	game := breakout.New(breakout.Options{LegacyMultiBounce: cfg.Gameplay.LegacyMultiBounce})
	if flagFrom != "" {
		if err := restoreReport(game, flagFrom); err != nil {
			return err
		}
		logger.Info("resumed", "from", flagFrom, "tick", game.Tick(), "state", game.State())
	}
	sess := session.New("sim", "autopilot", game, logger, audio.Silent())

	frames := breakout.Autopilot{}.Run(game, flagFrames, sess.Step)

	snap := game.Snapshot()
	report := simReport{
		Frames:   frames,
		Hash:     fmt.Sprintf("%016x", snap.Hash()),
		Snapshot: snap,
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// restoreReport loads the snapshot of a saved sim report into game.
func restoreReport(game *breakout.Game, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var report simReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("parse report %s: %w", path, err)
	}
	if err := game.ApplySnapshot(report.Snapshot); err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	return nil
}
