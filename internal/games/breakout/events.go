package breakout

import "fmt"

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventPaddleHit
	EventBrickDestroyed
	EventWallBounce
	EventLifeLost
	EventGameOver
	EventReturnedToMenu
	EventQuit
)

var eventNames = [...]string{
	EventStarted:        "started",
	EventPaused:         "paused",
	EventResumed:        "resumed",
	EventPaddleHit:      "paddle_hit",
	EventBrickDestroyed: "brick_destroyed",
	EventWallBounce:     "wall_bounce",
	EventLifeLost:       "life_lost",
	EventGameOver:       "game_over",
	EventReturnedToMenu: "returned_to_menu",
	EventQuit:           "quit",
}

// String returns the event name used in logs.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is a single frame event. Row and Col are set for brick events only.
type Event struct {
	Kind EventKind
	Row  int
	Col  int
}

func (e Event) String() string {
	if e.Kind == EventBrickDestroyed {
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Row, e.Col)
	}
	return e.Kind.String()
}

// StepResult is what a frame produced.
type StepResult struct {
	State  State
	Lives  int
	Score  int
	Events []Event
	Quit   bool
}

// Has reports whether an event of the given kind happened.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many events of the given kind happened.
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
