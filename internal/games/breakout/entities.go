package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle dimensions and starting layout in world units.
const (
	PaddleWidth  = 180.0
	PaddleHeight = 30.0
	PaddleSpeed  = 9.0
	PaddleStartX = (core.ViewportWidth - PaddleWidth) / 2
	PaddleStartY = core.ViewportHeight - 60
)

// Ball dimensions and launch parameters.
const (
	BallSize    = 26.0
	BallStartX  = core.ViewportWidth / 2
	BallStartY  = core.ViewportHeight / 2
	BallSpeed   = 6.0
	BallStartVX = BallSpeed
	BallStartVY = -BallSpeed
)

// Brick grid layout.
const (
	BrickRows    = 6
	BrickCols    = 10
	BrickWidth   = 120.0
	BrickHeight  = 40.0
	BrickSpacing = 10.0
	BrickOriginX = (core.ViewportWidth-BrickCols*(BrickWidth+BrickSpacing))/2 + BrickSpacing/2
	BrickOriginY = 100.0
)

// Session rules.
const (
	StartingLives  = 3
	PointsPerBrick = 100
)

// RowColors are the brick colors from the top row down.
var RowColors = [BrickRows]core.Color{
	core.RGB(210, 50, 50),  // red
	core.RGB(210, 140, 50), // orange
	core.RGB(200, 200, 50), // yellow
	core.RGB(50, 180, 50),  // green
	core.RGB(50, 100, 200), // blue
	core.RGB(150, 50, 200), // purple
}

// Paddle is the player's bat at the bottom of the field.
type Paddle struct {
	Rect  core.Rect
	Speed float64
}

// NewPaddle returns a paddle at its starting position.
func NewPaddle() Paddle {
	return Paddle{
		Rect:  core.NewRect(PaddleStartX, PaddleStartY, PaddleWidth, PaddleHeight),
		Speed: PaddleSpeed,
	}
}

// Move shifts the paddle by dir*speed and clamps it inside the viewport.
func (p *Paddle) Move(dir float64) {
	p.Rect.X = core.Clamp(p.Rect.X+dir*p.Speed, 0, core.ViewportWidth-p.Rect.W)
}

// Ball is the bouncing ball. Only the signs of VX and VY ever change.
type Ball struct {
	Rect   core.Rect
	VX, VY float64
}

// NewBall returns a ball at the launch position with the launch velocity.
func NewBall() Ball {
	return Ball{
		Rect: core.NewRect(BallStartX, BallStartY, BallSize, BallSize),
		VX:   BallStartVX,
		VY:   BallStartVY,
	}
}

// Move advances the ball by one frame of velocity.
func (b *Ball) Move() {
	b.Rect.X += b.VX
	b.Rect.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Relaunch puts the ball back at the launch position heading up, keeping the
// horizontal direction it had.
func (b *Ball) Relaunch() {
	sign := core.Sign(b.VX)
	if sign == 0 {
		sign = 1
	}
	b.Rect.X = BallStartX
	b.Rect.Y = BallStartY
	b.VX = sign * BallSpeed
	b.VY = -BallSpeed
}

// Brick is one destructible block.
type Brick struct {
	Rect   core.Rect
	Row    int
	Col    int
	Active bool
}

// Color returns the brick's row color.
func (b Brick) Color() core.Color {
	return RowColors[b.Row]
}

// Board is the brick grid, stored row-major.
type Board struct {
	Bricks [BrickRows * BrickCols]Brick
}

// NewBoard lays out a full grid of active bricks.
func NewBoard() Board {
	var board Board
	board.Reset()
	return board
}

// Reset reactivates every brick at its grid position.
func (b *Board) Reset() {
	for row := range BrickRows {
		for col := range BrickCols {
			b.Bricks[row*BrickCols+col] = Brick{
				Rect: core.NewRect(
					BrickOriginX+float64(col)*(BrickWidth+BrickSpacing),
					BrickOriginY+float64(row)*(BrickHeight+BrickSpacing),
					BrickWidth,
					BrickHeight,
				),
				Row:    row,
				Col:    col,
				Active: true,
			}
		}
	}
}

// At returns the brick at the given grid position.
func (b *Board) At(row, col int) *Brick {
	return &b.Bricks[row*BrickCols+col]
}

// CountActive returns the number of bricks still standing.
func (b *Board) CountActive() int {
	count := 0
	for i := range b.Bricks {
		if b.Bricks[i].Active {
			count++
		}
	}
	return count
}
