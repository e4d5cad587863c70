package breakout

import (
	"fmt"
	"math"
	"time"
)

// Snapshot contains the complete session state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64  `yaml:"tick"`
	State     string  `yaml:"state"`
	Lives     int     `yaml:"lives"`
	Score     int     `yaml:"score"`
	PaddleX   float64 `yaml:"paddle_x"`
	BallX     float64 `yaml:"ball_x"`
	BallY     float64 `yaml:"ball_y"`
	BallVX    float64 `yaml:"ball_vx"`
	BallVY    float64 `yaml:"ball_vy"`
	RespawnMS int64   `yaml:"respawn_ms"`

	BricksRemaining int `yaml:"bricks_remaining"`

	// Brick states, row-major, 1 = active.
	BrickData []int `yaml:"bricks,flow"`
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.board.Bricks))
	for i := range g.board.Bricks {
		if g.board.Bricks[i].Active {
			brickData[i] = 1
		}
	}

	return Snapshot{
		Tick:            g.tick,
		State:           g.state.String(),
		Lives:           g.lives,
		Score:           g.score,
		PaddleX:         g.paddle.Rect.X,
		BallX:           g.ball.Rect.X,
		BallY:           g.ball.Rect.Y,
		BallVX:          g.ball.VX,
		BallVY:          g.ball.VY,
		RespawnMS:       g.respawn.Milliseconds(),
		BricksRemaining: g.board.CountActive(),
		BrickData:       brickData,
	}
}

// ApplySnapshot restores session state from a snapshot. The game is left
// untouched when the snapshot does not describe a valid session.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	state, ok := ParseState(snap.State)
	if !ok {
		return fmt.Errorf("snapshot: unknown state %q", snap.State)
	}
	if len(snap.BrickData) != len(g.board.Bricks) {
		return fmt.Errorf("snapshot: %d bricks, expected %d", len(snap.BrickData), len(g.board.Bricks))
	}

	g.tick = snap.Tick
	g.state = state
	g.lives = snap.Lives
	g.score = snap.Score
	g.paddle = NewPaddle()
	g.paddle.Rect.X = snap.PaddleX
	g.ball = NewBall()
	g.ball.Rect.X = snap.BallX
	g.ball.Rect.Y = snap.BallY
	g.ball.VX = snap.BallVX
	g.ball.VY = snap.BallVY
	g.respawn = time.Duration(snap.RespawnMS) * time.Millisecond

	for i, v := range snap.BrickData {
		g.board.Bricks[i].Active = v == 1
	}
	return nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.RespawnMS) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
