//go:build ebiten

package desktop

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

// TPS is the update rate; 62 ticks per second is about one 16 ms frame.
const TPS = 62

func init() {
	registry.Register(registry.Info{
		Name:        "desktop",
		Description: "native window (Ebitengine)",
	}, newFrontend)
}

type frontend struct {
	cfg    config.DesktopConfig
	logger *log.Logger
}

func newFrontend(env registry.Env) (registry.Frontend, error) {
	return &frontend{cfg: env.Config.Desktop, logger: env.Logger}, nil
}

// Run implements registry.Frontend. It must be called from the main goroutine.
func (f *frontend) Run(ctx context.Context, sess *session.Session) error {
	fonts, err := LoadFonts(f.cfg.FontPath, f.logger)
	if err != nil {
		f.logger.Warn("text disabled", "error", err, "font_path", f.cfg.FontPath)
	} else {
		f.logger.Info("font loaded", "path", fonts.Path)
	}

	ebiten.SetWindowTitle(core.WindowTitle)
	ebiten.SetWindowSize(int(core.ViewportWidth), int(core.ViewportHeight))
	ebiten.SetTPS(TPS)
	ebiten.SetWindowClosingHandled(true)

	game := &Game{ctx: ctx, sess: sess, fonts: fonts}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctx   context.Context
	sess  *session.Session
	fonts Fonts
}

// Update polls input and advances the session one frame.
func (g *Game) Update() error {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionCancel)
	}
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		in.Set(core.ActionQuit)
	}
	in.Held = core.HeldKeys{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}

	if res := g.sess.Step(in); res.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sess.Render(&surface{dst: screen, fonts: g.fonts})
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return int(core.ViewportWidth), int(core.ViewportHeight)
}

// surface implements core.Surface on an ebiten image.
type surface struct {
	dst   *ebiten.Image
	fonts Fonts
}

func nrgba(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *surface) Clear(c core.Color) {
	s.dst.Fill(nrgba(c))
}

func (s *surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), nrgba(c), false)
}

func (s *surface) HasFont(role core.FontRole) bool {
	return s.fonts.Face(role) != nil
}

func (s *surface) MeasureText(role core.FontRole, str string) (float64, float64) {
	return Measure(s.fonts.Face(role), str)
}

// DrawText places the top of the line at y; text.Draw wants the baseline.
func (s *surface) DrawText(role core.FontRole, str string, x, y float64, c core.Color) {
	face := s.fonts.Face(role)
	if face == nil {
		return
	}
	text.Draw(s.dst, str, face, int(x), int(y+Ascent(face)), nrgba(c))
}

// Present is a no-op: Ebitengine shows the frame after Draw returns.
func (s *surface) Present() {}
