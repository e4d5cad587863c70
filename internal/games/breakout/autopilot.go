package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Autopilot plays the game without a human: it starts from the menu and
// keeps the paddle centered under the ball. It never leaves GameOver.
type Autopilot struct{}

// Next returns the input for the coming frame of g.
func (Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	switch g.State() {
	case StateMenu, StatePaused:
		in.Set(core.ActionConfirm)
	case StatePlaying:
		ballX, _ := g.ball.Rect.Center()
		paddleX, _ := g.paddle.Rect.Center()
		switch {
		case ballX > paddleX+g.paddle.Speed:
			in.Held.Right = true
		case ballX < paddleX-g.paddle.Speed:
			in.Held.Left = true
		}
	}

	return in
}

// Run drives g with the autopilot for at most frames frames and returns the
// number of frames stepped. step advances the game by one frame; it is
// g.Step or a wrapper around it such as a session. Run stops once the game
// is over, without stepping a game that is already over.
func (a Autopilot) Run(g *Game, frames int, step func(core.InputFrame) StepResult) int {
	for i := range frames {
		if g.State() == StateGameOver {
			return i
		}
		if res := step(a.Next(g)); res.Quit {
			return i + 1
		}
	}
	return frames
}
