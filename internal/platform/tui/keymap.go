package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Reset  key.Binding
	Escape key.Binding
	Help   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Reset, k.Escape}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Reset, k.Escape, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// Action maps a key message to a simulation action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Escape):
		return core.ActionEscape
	}
	return core.ActionNone
}

// HeldKeys turns key presses into per-frame held state. Terminals report
// presses and auto-repeats but never releases, so a direction stays held for
// a fixed number of frames after its last press. Escape and reset are held
// for exactly the next frame.
type HeldKeys struct {
	holdTicks int
	left      int // Frames left holding
	right     int
	escape    bool
	reset     bool
}

// NewHeldKeys creates a tracker that holds directions for holdTicks frames.
func NewHeldKeys(holdTicks int) HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return HeldKeys{holdTicks: holdTicks}
}

// Press records a key press. Pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = h.holdTicks
		h.left = 0
	case core.ActionEscape:
		h.escape = true
	case core.ActionReset:
		h.reset = true
	}
}

// Release drops every held key.
func (h *HeldKeys) Release() {
	h.left, h.right = 0, 0
	h.escape, h.reset = false, false
}

// Next returns the input for the coming frame and ages the held keys.
func (h *HeldKeys) Next() core.InputFrame {
	in := core.NewInputFrame()
	if h.left > 0 {
		in.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		in.Set(core.ActionRight)
		h.right--
	}
	if h.escape {
		in.Set(core.ActionEscape)
	}
	if h.reset {
		in.Set(core.ActionReset)
	}
	h.escape, h.reset = false, false
	return in
}
