package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

// Smallest terminal the game is drawn in. Below it a notice is shown.
const (
	MinCols = 40
	MinRows = 12
)

// helpLines is the height reserved below the playfield.
const helpLines = 1

// Options configures a Model.
type Options struct {
	Keys       config.KeysConfig
	HoldFrames int
	Interval   time.Duration // default core.FrameInterval

	// Initial terminal size; a WindowSizeMsg replaces it.
	Width, Height int

	// Renderer styles the output. Nil uses the process default.
	Renderer *lipgloss.Renderer

	// ScreenshotDir receives ctrl+s text dumps. Empty disables them.
	ScreenshotDir string

	Logger *log.Logger
}

// Model is the Bubble Tea model running one breakout session.
type Model struct {
	sess    *session.Session
	keys    KeyMap
	help    help.Model
	hold    *HoldTracker
	latch   *TriggerLatch
	raster  *Raster
	painter *Painter
	logger  *log.Logger

	pending  core.InputFrame
	interval time.Duration
	shotDir  string

	width, height int
	quitting      bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(sess *session.Session, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = core.FrameInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		sess:     sess,
		keys:     NewKeyMap(opts.Keys),
		help:     help.New(),
		hold:     NewHoldTracker(opts.HoldFrames),
		latch:    NewTriggerLatch(opts.HoldFrames),
		raster:   NewRaster(0, 0),
		painter:  NewPainter(opts.Renderer),
		logger:   logger,
		pending:  core.NewInputFrame(),
		interval: interval,
		shotDir:  opts.ScreenshotDir,
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records triggers and held directions for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" && m.shotDir != "" {
		m.saveScreenshot()
		return m, nil
	}

	action, dir := m.keys.Map(msg)
	if m.latch.Accept(action) {
		m.pending.Set(action)
	}
	m.hold.Press(dir)
	return m, nil
}

// resize rescales the raster; the game itself is unaffected.
func (m *Model) resize(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	m.help.Width = m.width
	if m.tooSmall() {
		m.raster.Resize(0, 0)
		return
	}
	m.raster.Resize(m.width, m.height-helpLines)
	m.logger.Debug("resized", "cols", m.raster.Cols(), "rows", m.raster.Rows())
}

func (m Model) tooSmall() bool {
	return m.width < MinCols || m.height < MinRows
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.pending
	in.Held = m.hold.Tick()
	m.latch.Tick()
	res := m.sess.Step(in)
	m.pending = core.NewInputFrame()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if res.State != breakout.StatePlaying {
		m.hold.Release()
	}
	return m, tickCmd(m.interval)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.raster.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		msg := fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d", m.width, m.height, MinCols, MinRows)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.sess.Render(m.raster)
	view := m.painter.RenderScreen(m.raster.Screen())

	footer := ""
	if m.sess.Game().State() == breakout.StateMenu {
		footer = m.help.View(m.keys)
	}
	return view + "\n" + footer
}

// Run starts the Bubble Tea program for sess and blocks until the player
// quits or ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(sess, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
