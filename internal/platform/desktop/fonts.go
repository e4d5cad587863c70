// Package desktop runs breakout in a native 1400x900 window on Ebitengine.
// The window frontend is only compiled with the ebiten build tag; font
// loading is always available.
package desktop

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Font sizes in pixels at 72 DPI.
const (
	BodySize  = 40
	TitleSize = 100
)

// ErrNoFont is returned when no candidate font could be loaded.
var ErrNoFont = errors.New("desktop: no usable font")

// Fonts holds one face per core.FontRole. A zero Fonts draws no text.
type Fonts struct {
	Body  font.Face
	Title font.Face

	// Path is the file the faces came from.
	Path string
}

// Face returns the face for a role, nil when none is loaded.
func (f Fonts) Face(role core.FontRole) font.Face {
	switch role {
	case core.FontTitle:
		return f.Title
	case core.FontBody:
		return f.Body
	default:
		return nil
	}
}

// SystemFontPaths returns fallback font files for an operating system.
func SystemFontPaths(goos string) []string {
	switch goos {
	case "windows":
		return []string{`C:\Windows\Fonts\arial.ttf`}
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		}
	}
}

// LoadFonts tries the bundled font first, then the system defaults.
// Every failed candidate is logged at debug; when all fail it returns
// ErrNoFont and the caller runs without text.
func LoadFonts(bundled string, logger *log.Logger) (Fonts, error) {
	candidates := SystemFontPaths(runtime.GOOS)
	if bundled != "" {
		candidates = append([]string{bundled}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Debug("font candidate skipped", "path", path, "error", err)
			continue
		}
		fonts, err := ParseFonts(data)
		if err != nil {
			logger.Debug("font candidate skipped", "path", path, "error", err)
			continue
		}
		fonts.Path = path
		return fonts, nil
	}
	return Fonts{}, ErrNoFont
}

// ParseFonts builds body and title faces from TTF/OTF data.
func ParseFonts(data []byte) (Fonts, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return Fonts{}, fmt.Errorf("desktop: parse font: %w", err)
	}

	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	body, err := newFace(BodySize)
	if err != nil {
		return Fonts{}, fmt.Errorf("desktop: body face: %w", err)
	}
	title, err := newFace(TitleSize)
	if err != nil {
		return Fonts{}, fmt.Errorf("desktop: title face: %w", err)
	}
	return Fonts{Body: body, Title: title}, nil
}

// Measure returns the advance width and line height of text in pixels.
func Measure(face font.Face, text string) (w, h float64) {
	if face == nil {
		return 0, 0
	}
	m := face.Metrics()
	return fixedToFloat(font.MeasureString(face, text)), fixedToFloat(m.Ascent + m.Descent)
}

// Ascent returns how far below the top of a line its baseline sits.
func Ascent(face font.Face) float64 {
	if face == nil {
		return 0
	}
	return fixedToFloat(face.Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
