package core

import "time"

// World constants. The simulation always runs in this logical space; frontends
// scale it to whatever they draw on.
const (
	WindowTitle    = "Breakout"
	ViewportWidth  = 1400.0
	ViewportHeight = 900.0
)

// FrameInterval is the fixed simulation step. There is no delta-time scaling:
// one Step is one frame.
const FrameInterval = 16 * time.Millisecond
