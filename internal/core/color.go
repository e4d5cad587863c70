package core

import "fmt"

// Color is a straight-alpha RGBA color shared by all frontends.
// Terminal frontends map it to truecolor styles, desktop frontends to color.RGBA.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Predefined colors for game elements.
var (
	ColorBlack      = RGB(0, 0, 0)
	ColorWhite      = RGB(255, 255, 255)
	ColorGray       = RGB(100, 100, 100)
	ColorBackground = RGB(15, 15, 25)
	ColorPaddle     = RGB(200, 200, 255)
	ColorBall       = RGB(255, 50, 50)
	ColorHeart      = RGB(255, 50, 50)
)

// Opaque reports whether the color fully covers what is below it.
func (c Color) Opaque() bool {
	return c.A == 255
}

// Over composites c on top of dst and returns an opaque result.
func (c Color) Over(dst Color) Color {
	if c.A == 255 {
		return c
	}
	a := uint32(c.A)
	mix := func(src, below uint8) uint8 {
		return uint8((uint32(src)*a + uint32(below)*(255-a) + 127) / 255)
	}
	return Color{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: 255,
	}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
