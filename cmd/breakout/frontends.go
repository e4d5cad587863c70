package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func newFrontendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frontends",
		Short: "List the frontends built into this binary",
		Long: `Shows every frontend this binary can run. The desktop frontend is
only present in builds with the ebiten tag.`,
		Args: cobra.NoArgs,
		RunE: runFrontends,
	}
}

func runFrontends(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	list := registry.List()

	fmt.Fprintln(out, "Available frontends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range list {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, f := range list {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, f.Name, f.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'breakout play --frontend <name>' to use one.")
	return nil
}
