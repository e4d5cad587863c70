package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	cfg := config.Default()
	opts.Keys = cfg.TUI.Keys
	if opts.HoldFrames == 0 {
		opts.HoldFrames = cfg.TUI.HoldFrames
	}
	if opts.Width == 0 {
		opts.Width, opts.Height = 140, 46
	}
	opts.Renderer = testRenderer(termenv.Ascii)

	sess := session.New("test", "tester", breakout.New(breakout.Options{}), nil, nil)
	return NewModel(sess, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelStartsRound(t *testing.T) {
	m := newTestModel(t, Options{})
	require.NotNil(t, m.Init())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg{})

	assert.NotNil(t, cmd)
	assert.Equal(t, breakout.StatePlaying, m.sess.Game().State())
	assert.Equal(t, uint64(1), m.sess.Game().Tick())
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m := newTestModel(t, Options{HoldFrames: 3})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})

	start := m.sess.Game().Paddle().Rect.X
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	// Three held frames, then the press expires.
	assert.InDelta(t, start+3*breakout.PaddleSpeed, m.sess.Game().Paddle().Rect.X, 1e-9)
}

func TestModelTriggersLastOneFrame(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	assert.Equal(t, breakout.StatePlaying, m.sess.Game().State())
}

func TestModelHeldEnterTogglesOnce(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	for range 20 {
		m, _ = update(t, m, TickMsg{})
	}
	require.Equal(t, breakout.StatePlaying, m.sess.Game().State())

	// Terminal auto-repeat: Enter arrives every other frame while held.
	for range 6 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = update(t, m, TickMsg{})
		m, _ = update(t, m, TickMsg{})
		assert.Equal(t, breakout.StatePaused, m.sess.Game().State())
	}

	// Released long enough, the next press resumes.
	for range 20 {
		m, _ = update(t, m, TickMsg{})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, breakout.StatePlaying, m.sess.Game().State())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := update(t, m, TickMsg{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelEscQuitsFromMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := update(t, m, TickMsg{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelViewMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	view := m.View()

	assert.Contains(t, view, "B R E A K O U T")
	assert.Contains(t, view, "PLAY (ENTER)")
	assert.Contains(t, view, "start/pause")
}

func TestModelViewPlayingHidesHelp(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	view := m.View()

	assert.Contains(t, view, "SCORE: 00000")
	assert.NotContains(t, view, "start/pause")
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Contains(t, m.View(), "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.raster.Cols())
	assert.Equal(t, 29, m.raster.Rows())
	assert.Contains(t, m.View(), "PLAY (ENTER)")
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := newTestModel(t, Options{ScreenshotDir: dir})
	m.View()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "PLAY (ENTER)")
	assert.Equal(t, uint64(0), m.sess.Game().Tick())
}
