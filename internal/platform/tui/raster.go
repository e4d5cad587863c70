package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// halfBlock draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = '▀'

// textCell is a glyph drawn over the pixel layer.
type textCell struct {
	r  rune
	fg core.Color
	ok bool
}

// Raster implements core.Surface on a terminal cell grid. The world is
// scaled into a pixel grid of cols x 2*rows (two pixels per cell), and text
// is kept in a separate layer on top of it. Present composes both layers
// into a core.Screen.
type Raster struct {
	cols, rows int
	sx, sy     float64 // world units to pixels

	pixels []core.Color
	text   []textCell
	screen *core.Screen
}

// NewRaster creates a raster for a cols x rows terminal area.
func NewRaster(cols, rows int) *Raster {
	r := &Raster{screen: core.NewScreen(0, 0)}
	r.Resize(cols, rows)
	return r
}

// Resize changes the output size. The current frame is discarded.
func (r *Raster) Resize(cols, rows int) {
	r.cols = max(cols, 0)
	r.rows = max(rows, 0)
	r.sx = float64(r.cols) / core.ViewportWidth
	r.sy = float64(2*r.rows) / core.ViewportHeight
	r.pixels = make([]core.Color, r.cols*r.rows*2)
	r.text = make([]textCell, r.cols*r.rows)
	r.screen.Resize(r.cols, r.rows)
	r.Clear(core.ColorBlack)
}

// Cols returns the width in cells.
func (r *Raster) Cols() int { return r.cols }

// Rows returns the height in cells.
func (r *Raster) Rows() int { return r.rows }

// Screen returns the cell buffer filled by the last Present.
func (r *Raster) Screen() *core.Screen { return r.screen }

// Pixel returns the color of pixel (x, y), black when out of range.
func (r *Raster) Pixel(x, y int) core.Color {
	if x < 0 || x >= r.cols || y < 0 || y >= 2*r.rows {
		return core.ColorBlack
	}
	return r.pixels[y*r.cols+x]
}

// Clear implements core.Surface.
func (r *Raster) Clear(c core.Color) {
	c = c.Over(core.ColorBlack)
	for i := range r.pixels {
		r.pixels[i] = c
	}
	clear(r.text)
}

// FillRect implements core.Surface. A pixel is covered when its center lies
// inside the rectangle; rectangles thinner than a pixel still cover the
// pixel under their center so small shapes never vanish.
func (r *Raster) FillRect(rect core.Rect, c core.Color) {
	x0, x1 := span(rect.Left(), rect.Right(), r.sx, r.cols)
	y0, y1 := span(rect.Top(), rect.Bottom(), r.sy, 2*r.rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for y := y0; y < y1; y++ {
		row := r.pixels[y*r.cols : (y+1)*r.cols]
		for x := x0; x < x1; x++ {
			row[x] = c.Over(row[x])
		}
	}

	// Opaque shapes hide text below them, translucent ones tint it.
	for cy := y0 / 2; cy <= (y1-1)/2; cy++ {
		for x := x0; x < x1; x++ {
			tc := &r.text[cy*r.cols+x]
			if !tc.ok {
				continue
			}
			if c.Opaque() {
				*tc = textCell{}
			} else {
				tc.fg = c.Over(tc.fg)
			}
		}
	}
}

// span converts a world interval to a half-open pixel range clipped to [0, n).
func span(lo, hi, scale float64, n int) (int, int) {
	if hi <= lo || n == 0 {
		return 0, 0
	}
	a := int(math.Ceil(lo*scale - 0.5))
	b := int(math.Ceil(hi*scale - 0.5))
	if b <= a {
		a = int(math.Floor((lo + hi) / 2 * scale))
		b = a + 1
	}
	return max(a, 0), min(b, n)
}

// HasFont implements core.Surface. The terminal's own glyphs serve every role.
func (r *Raster) HasFont(core.FontRole) bool { return true }

// MeasureText implements core.Surface.
func (r *Raster) MeasureText(role core.FontRole, text string) (float64, float64) {
	if r.cols == 0 || r.rows == 0 {
		return 0, 0
	}
	return float64(textWidth(role, text)) / r.sx, 2 / r.sy
}

// textWidth returns the width of text in cells. Titles are letter-spaced.
func textWidth(role core.FontRole, text string) int {
	n := len([]rune(text))
	if role == core.FontTitle && n > 0 {
		return 2*n - 1
	}
	return n
}

// DrawText implements core.Surface. Glyphs falling outside the grid are clipped.
func (r *Raster) DrawText(role core.FontRole, text string, x, y float64, c core.Color) {
	cx := int(math.Round(x * r.sx))
	cy := int(math.Floor(y*r.sy)) / 2
	if cy < 0 || cy >= r.rows {
		return
	}

	fg := c.Over(core.ColorBlack)
	put := func(ch rune) {
		if cx >= 0 && cx < r.cols {
			r.text[cy*r.cols+cx] = textCell{r: ch, fg: fg, ok: true}
		}
		cx++
	}
	for i, ch := range []rune(text) {
		if role == core.FontTitle && i > 0 {
			put(' ')
		}
		put(ch)
	}
}

// Present implements core.Surface.
func (r *Raster) Present() {
	for cy := range r.rows {
		for x := range r.cols {
			top := r.pixels[2*cy*r.cols+x]
			bottom := r.pixels[(2*cy+1)*r.cols+x]

			if tc := r.text[cy*r.cols+x]; tc.ok {
				r.screen.SetCell(x, cy, core.Cell{Rune: tc.r, Fg: tc.fg, Bg: blend(top, bottom)})
				continue
			}
			r.screen.SetCell(x, cy, core.Cell{Rune: halfBlock, Fg: top, Bg: bottom})
		}
	}
}

// blend averages two colors for the background behind a glyph.
func blend(a, b core.Color) core.Color {
	return core.Color{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 255,
	}
}
