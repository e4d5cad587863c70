package breakout

// State is the top-level game state.
type State int

const (
	StateMenu     State = iota // Title screen, initial state
	StatePlaying               // Ball in play
	StatePaused                // Frozen until confirm
	StateGameOver              // No lives left, waiting for acknowledgment
)

// String returns the state name used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ParseState is the inverse of State.String.
func ParseState(name string) (State, bool) {
	for s := StateMenu; s <= StateGameOver; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return StateMenu, false
}

// Transition evaluates the state machine for one frame.
//
//	Menu:     cancel -> quit, confirm -> Playing
//	Playing:  confirm -> Paused, lives <= 0 -> GameOver
//	Paused:   confirm -> Playing
//	GameOver: cancel -> quit, confirm -> Menu
//
// Cancel is checked before confirm and is ignored while Playing or Paused.
// Resets that go with a transition are applied by the caller.
func Transition(s State, lives int, confirm, cancel bool) (next State, quit bool) {
	switch s {
	case StateMenu:
		if cancel {
			return s, true
		}
		if confirm {
			return StatePlaying, false
		}
	case StatePlaying:
		if confirm {
			return StatePaused, false
		}
		if lives <= 0 {
			return StateGameOver, false
		}
	case StatePaused:
		if confirm {
			return StatePlaying, false
		}
	case StateGameOver:
		if cancel {
			return s, true
		}
		if confirm {
			return StateMenu, false
		}
	}
	return s, false
}
