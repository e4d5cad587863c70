//go:build ebiten

package main

// The desktop frontend registers itself only in ebiten builds.
import _ "github.com/vovakirdan/tui-breakout/internal/platform/desktop"
