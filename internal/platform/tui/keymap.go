package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
	Left    key.Binding
	Right   key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	binding := func(keys []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}
	return KeyMap{
		Confirm: binding(cfg.Confirm, "start/pause"),
		Cancel:  binding(cfg.Cancel, "quit from menu"),
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Quit:    binding(cfg.Quit, "exit"),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Confirm, k.Cancel, k.Quit},
	}
}

// Direction is a movement key.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Map translates a key message to a triggered action or a movement
// direction. At most one of them is set.
func (k KeyMap) Map(msg tea.KeyMsg) (core.Action, Direction) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, DirNone
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, DirNone
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel, DirNone
	case key.Matches(msg, k.Left):
		return core.ActionNone, DirLeft
	case key.Matches(msg, k.Right):
		return core.ActionNone, DirRight
	}
	return core.ActionNone, DirNone
}
