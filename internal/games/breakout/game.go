// Package breakout implements the Breakout game core: the four-state machine,
// the per-frame physics step and rendering onto a core.Surface.
// It has no platform dependencies; frontends feed it one InputFrame per
// fixed frame and draw it through their own Surface.
package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// RespawnDelay is how long the field stays frozen after a lost life.
const RespawnDelay = 500 * time.Millisecond

// Options tune gameplay behavior that is not part of the fixed rules.
type Options struct {
	// LegacyMultiBounce reflects the ball once per brick hit in a frame
	// instead of at most once per frame.
	LegacyMultiBounce bool
}

// Game is one play session. It is not safe for concurrent use; a frontend
// owns it and calls Step once per frame.
type Game struct {
	opts Options

	state State
	lives int
	score int

	paddle Paddle
	ball   Ball
	board  Board

	// respawn is the remaining freeze after a lost life.
	respawn time.Duration
	tick    uint64

	events []Event
}

// New creates a session in the Menu state.
func New(opts Options) *Game {
	g := &Game{opts: opts}
	g.Reset()
	return g
}

// Reset returns the session to program-start condition.
func (g *Game) Reset() {
	g.state = StateMenu
	g.lives = StartingLives
	g.score = 0
	g.paddle = NewPaddle()
	g.ball = NewBall()
	g.board = NewBoard()
	g.respawn = 0
	g.tick = 0
	g.events = nil
}

// Step advances the session by one frame: state machine first, then
// physics if the resulting state is Playing.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tick++
	g.events = nil

	if in.Has(core.ActionQuit) {
		g.emit(Event{Kind: EventQuit})
		return g.result(true)
	}

	prev := g.state
	next, quit := Transition(prev, g.lives, in.Has(core.ActionConfirm), in.Has(core.ActionCancel))
	if quit {
		g.emit(Event{Kind: EventQuit})
		return g.result(true)
	}
	g.enter(prev, next)

	if g.state == StatePlaying {
		g.update(in.Held)
	}

	return g.result(false)
}

// enter applies the side effects of a state change.
func (g *Game) enter(prev, next State) {
	if prev == next {
		return
	}
	g.state = next

	switch {
	case prev == StateMenu && next == StatePlaying:
		g.resetRound()
		g.emit(Event{Kind: EventStarted})
	case prev == StatePlaying && next == StatePaused:
		g.emit(Event{Kind: EventPaused})
	case prev == StatePaused && next == StatePlaying:
		g.emit(Event{Kind: EventResumed})
	case prev == StatePlaying && next == StateGameOver:
		g.emit(Event{Kind: EventGameOver})
	case prev == StateGameOver && next == StateMenu:
		g.lives = StartingLives
		g.score = 0
		g.emit(Event{Kind: EventReturnedToMenu})
	}
}

// resetRound relaunches the ball and restores all bricks.
// Lives and score are left alone.
func (g *Game) resetRound() {
	g.ball = NewBall()
	g.board.Reset()
	g.respawn = 0
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) result(quit bool) StepResult {
	return StepResult{
		State:  g.state,
		Lives:  g.lives,
		Score:  g.score,
		Events: g.events,
		Quit:   quit,
	}
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Board returns a copy of the brick grid.
func (g *Game) Board() Board { return g.board }

// Respawning reports whether the field is frozen after a lost life.
func (g *Game) Respawning() bool { return g.respawn > 0 }

// Tick returns the number of frames stepped since the last Reset.
func (g *Game) Tick() uint64 { return g.tick }
