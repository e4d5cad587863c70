package audio

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// ErrNoDevice is returned when no audio output can be opened.
var ErrNoDevice = errors.New("audio: no output device")

// sink receives finished streamers. The speaker mixes them on its own goroutine.
type sink interface {
	Play(s beep.Streamer)
}

// Manager plays cues. A nil or silent Manager ignores every call.
type Manager struct {
	mu     sync.Mutex
	out    sink
	volume float64
	logger *log.Logger
}

// New opens the audio output described by cfg. Failure to open a device is
// not an error: it is logged and the manager runs silent.
func New(cfg config.AudioConfig, logger *log.Logger) *Manager {
	m := &Manager{volume: cfg.Volume, logger: logger}
	if !cfg.Enabled {
		return m
	}

	out, err := openSpeaker(SampleRate)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return m
	}
	m.out = out
	return m
}

// Silent returns a manager that never makes a sound.
func Silent() *Manager {
	return &Manager{}
}

// Enabled reports whether cues reach an output.
func (m *Manager) Enabled() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.out != nil
}

// Play starts a cue without waiting for it to finish.
func (m *Manager) Play(c Cue) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.out == nil {
		return
	}
	s, err := Synth(c, m.volume)
	if err != nil {
		if m.logger != nil {
			m.logger.Debug("cue skipped", "cue", c, "error", err)
		}
		return
	}
	m.out.Play(s)
}
