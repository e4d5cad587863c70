package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// update runs the physics step for one Playing frame.
func (g *Game) update(held core.HeldKeys) {
	if g.respawn > 0 {
		g.respawn -= core.FrameInterval
		if g.respawn < 0 {
			g.respawn = 0
		}
		return
	}

	g.paddle.Move(held.Direction())
	g.ball.Move()

	g.collidePaddle()
	g.collideBricks()
	g.collideWalls()
	g.checkBottom()
}

// collidePaddle reflects the ball upward and rests it on the paddle top.
func (g *Game) collidePaddle() {
	if !core.Overlaps(g.ball.Rect, g.paddle.Rect) {
		return
	}
	g.ball.BounceY()
	g.ball.Rect.Y = g.paddle.Rect.Y - g.ball.Rect.H
	g.emit(Event{Kind: EventPaddleHit})
}

// collideBricks breaks every active brick the ball overlaps, in row-major
// order. The ball reflects once per frame unless LegacyMultiBounce is set.
func (g *Game) collideBricks() {
	reflected := false
	for i := range g.board.Bricks {
		brick := &g.board.Bricks[i]
		if !brick.Active || !core.Overlaps(g.ball.Rect, brick.Rect) {
			continue
		}

		brick.Active = false
		g.score += PointsPerBrick
		g.emit(Event{Kind: EventBrickDestroyed, Row: brick.Row, Col: brick.Col})

		if g.opts.LegacyMultiBounce || !reflected {
			g.ball.BounceY()
			reflected = true
		}
	}
}

// collideWalls reflects off the left, right and top edges.
// There is no position correction; the ball leaves the wall on the next frame.
func (g *Game) collideWalls() {
	r := g.ball.Rect
	bounced := false
	if r.Left() <= 0 || r.Right() >= core.ViewportWidth {
		g.ball.BounceX()
		bounced = true
	}
	if r.Top() <= 0 {
		g.ball.BounceY()
		bounced = true
	}
	if bounced {
		g.emit(Event{Kind: EventWallBounce})
	}
}

// checkBottom costs a life when the ball reaches the bottom edge.
func (g *Game) checkBottom() {
	if g.ball.Rect.Bottom() < core.ViewportHeight {
		return
	}
	g.lives--
	g.ball.Relaunch()
	g.respawn = RespawnDelay
	g.emit(Event{Kind: EventLifeLost})
}
