package core

// FontRole selects one of the logical fonts a surface provides.
type FontRole int

const (
	FontBody  FontRole = iota // HUD and menu entries
	FontTitle                 // Large headings
)

// String returns a human-readable name for the role.
func (f FontRole) String() string {
	switch f {
	case FontBody:
		return "body"
	case FontTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Surface is the drawing contract the game renders onto.
// All coordinates are world units (ViewportWidth x ViewportHeight); each
// implementation scales them to its own output.
type Surface interface {
	// Clear resets the whole frame to a color.
	Clear(c Color)

	// FillRect fills a rectangle. Colors with alpha below 255 blend over
	// what was drawn before.
	FillRect(r Rect, c Color)

	// HasFont reports whether text can be drawn in the given role.
	// Surfaces without a usable font silently skip DrawText.
	HasFont(role FontRole) bool

	// MeasureText returns the drawn size of text in world units.
	MeasureText(role FontRole, text string) (w, h float64)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(role FontRole, text string, x, y float64, c Color)

	// Present commits the frame.
	Present()
}
