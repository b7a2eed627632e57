package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// helpHeight is the number of terminal rows kept for the help line.
const helpHeight = 1

// Model is the Bubble Tea model that runs one simulation.
type Model struct {
	sim      *breakout.Simulation
	canvas   *CellCanvas
	palette  Palette
	keys     KeyMap
	held     HeldKeys
	help     help.Model
	tickRate int
	escaped  bool
	quitting bool
}

// NewModel creates a model for sim shown in a width x height terminal.
func NewModel(sim *breakout.Simulation, cfg config.Config, width, height int) Model {
	fieldW, fieldH := sim.Screen()
	cols, rows := playArea(width, height)

	h := help.New()
	h.Width = width

	return Model{
		sim:      sim,
		canvas:   NewCellCanvas(fieldW, fieldH, cols, rows),
		palette:  NewPalette(nil),
		keys:     DefaultKeyMap(),
		held:     NewHeldKeys(cfg.Terminal.HoldTicks),
		help:     h,
		tickRate: cfg.Screen.TickRate,
	}
}

// WithPalette returns the model drawing with p.
func (m Model) WithPalette(p Palette) Model {
	m.palette = p
	return m
}

// playArea returns the cells available to the playfield.
func playArea(width, height int) (cols, rows int) {
	return max(width, 1), max(height-helpHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(playArea(msg.Width, msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses; they take effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.held.Press(action)
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.sim.Frame(m.held.Next())
	if res.State == breakout.StateQuit {
		m.escaped = true
		m.quitting = true
		return m, tea.Quit
	}
	if res.Reset {
		m.held.Release()
	}

	return m, tickCmd(m.tickRate)
}

// View renders the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.canvas)
	return RenderScreen(m.canvas.Screen(), m.palette) + "\n" + m.help.View(m.keys)
}

// Escaped reports whether the player left with escape.
func (m Model) Escaped() bool {
	return m.escaped
}

// Simulation returns the running simulation.
func (m Model) Simulation() *breakout.Simulation {
	return m.sim
}

// Run plays sim in the local terminal until escape. It returns
// breakout.ErrEscape when the player pressed escape.
func Run(sim *breakout.Simulation, cfg config.Config, width, height int) error {
	model := NewModel(sim, cfg, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Escaped() {
		return breakout.ErrEscape
	}
	return nil
}
