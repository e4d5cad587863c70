package tui

import "github.com/vovakirdan/tui-breakout/internal/core"

// HoldTracker emulates held movement keys. Terminals report presses (and
// auto-repeats) but never releases, so a press counts as held for a fixed
// number of frames and each repeat refreshes it. Pressing the opposite
// direction releases the other one at once.
type HoldTracker struct {
	frames int
	left   int
	right  int
}

// NewHoldTracker creates a tracker holding each press for frames frames.
func NewHoldTracker(frames int) *HoldTracker {
	return &HoldTracker{frames: max(frames, 1)}
}

// Press records a key press in the given direction.
func (h *HoldTracker) Press(dir Direction) {
	switch dir {
	case DirLeft:
		h.left = h.frames
		h.right = 0
	case DirRight:
		h.right = h.frames
		h.left = 0
	}
}

// Tick returns the held levels for the coming frame and ages them by one frame.
func (h *HoldTracker) Tick() core.HeldKeys {
	held := core.HeldKeys{Left: h.left > 0, Right: h.right > 0}
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return held
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left, h.right = 0, 0
}

// TriggerLatch drops auto-repeats of trigger keys. A trigger that arrives
// again within frames frames of its previous arrival is a repeat, and every
// repeat extends the window, so a held key fires once per press.
type TriggerLatch struct {
	frames int
	recent map[core.Action]int
}

// NewTriggerLatch creates a latch with a repeat window of frames frames.
func NewTriggerLatch(frames int) *TriggerLatch {
	return &TriggerLatch{
		frames: max(frames, 1),
		recent: make(map[core.Action]int),
	}
}

// Accept records an arrival of a and reports whether it is a new press.
// Quit is never latched.
func (l *TriggerLatch) Accept(a core.Action) bool {
	if a == core.ActionNone {
		return false
	}
	if a == core.ActionQuit {
		return true
	}
	repeat := l.recent[a] > 0
	l.recent[a] = l.frames
	return !repeat
}

// Tick ages every window by one frame.
func (l *TriggerLatch) Tick() {
	for a, n := range l.recent {
		if n <= 1 {
			delete(l.recent, a)
			continue
		}
		l.recent[a] = n - 1
	}
}
