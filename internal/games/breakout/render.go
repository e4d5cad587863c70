package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Overlay colors drawn over the field.
var (
	PauseOverlay    = core.RGBA(0, 0, 0, 150)
	GameOverOverlay = core.RGBA(50, 0, 0, 180)
)

// Heart layout. One heart per life, right to left from the top-right corner.
const (
	heartScale   = 1.5
	heartPixel   = 5 * heartScale
	heartRight   = core.ViewportWidth - 60
	heartSpacing = 50.0
	heartTop     = 25.0
)

var heartMask = [5][7]bool{
	{false, true, true, false, true, true, false},
	{true, true, true, true, true, true, true},
	{true, true, true, true, true, true, true},
	{false, true, true, true, true, true, false},
	{false, false, true, true, true, false, false},
}

// Render draws the session according to its current state.
// It does not call Present.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	if g.state == StateMenu {
		g.renderMenu(dst)
		return
	}

	g.renderField(dst)
	g.renderHUD(dst)

	switch g.state {
	case StatePaused:
		dst.FillRect(fullScreen(), PauseOverlay)
		drawCentered(dst, core.FontTitle, "PAUSED", 350, core.ColorWhite)
		drawCentered(dst, core.FontBody, "Press ENTER to continue", 500, core.ColorWhite)
	case StateGameOver:
		dst.FillRect(fullScreen(), GameOverOverlay)
		drawCentered(dst, core.FontTitle, "GAME OVER", 300, core.ColorWhite)
		drawCentered(dst, core.FontBody, fmt.Sprintf("Final score: %05d", g.score), 450, core.ColorWhite)
		drawCentered(dst, core.FontBody, "ENTER for menu", 600, core.ColorWhite)
		drawCentered(dst, core.FontBody, "ESC to quit", 660, core.ColorGray)
	}
}

func (g *Game) renderMenu(dst core.Surface) {
	dst.Clear(core.ColorBlack)
	drawCentered(dst, core.FontTitle, "BREAKOUT", 150, core.ColorWhite)
	drawCentered(dst, core.FontBody, "PLAY (ENTER)", 400, core.ColorWhite)
	drawCentered(dst, core.FontBody, "QUIT (ESC)", 600, core.ColorWhite)
}

// renderField draws bricks, paddle and ball.
func (g *Game) renderField(dst core.Surface) {
	for i := range g.board.Bricks {
		brick := &g.board.Bricks[i]
		if brick.Active {
			dst.FillRect(brick.Rect, brick.Color())
		}
	}
	dst.FillRect(g.paddle.Rect, core.ColorPaddle)
	dst.FillRect(g.ball.Rect, core.ColorBall)
}

// renderHUD draws the score and the lives.
func (g *Game) renderHUD(dst core.Surface) {
	if dst.HasFont(core.FontBody) {
		dst.DrawText(core.FontBody, fmt.Sprintf("SCORE: %05d", g.score), 30, 20, core.ColorWhite)
	}
	for i := range max(g.lives, 0) {
		drawHeart(dst, heartRight-float64(i)*heartSpacing, heartTop)
	}
}

func drawHeart(dst core.Surface, x, y float64) {
	for row, line := range heartMask {
		for col, on := range line {
			if !on {
				continue
			}
			dst.FillRect(core.NewRect(
				x+float64(col)*heartPixel,
				y+float64(row)*heartPixel,
				heartPixel,
				heartPixel,
			), core.ColorHeart)
		}
	}
}

// drawCentered draws text horizontally centered with its top at y.
// Text is skipped when the surface has no font for the role.
func drawCentered(dst core.Surface, role core.FontRole, text string, y float64, c core.Color) {
	if !dst.HasFont(role) {
		return
	}
	w, _ := dst.MeasureText(role, text)
	dst.DrawText(role, text, (core.ViewportWidth-w)/2, y, c)
}

func fullScreen() core.Rect {
	return core.NewRect(0, 0, core.ViewportWidth, core.ViewportHeight)
}
