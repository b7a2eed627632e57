package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

func newTestModel(t *testing.T) (Model, *breakout.Simulation) {
	t.Helper()
	cfg := config.DefaultConfig()
	sim := breakout.New(cfg)
	return NewModel(sim, cfg, 80, 24).WithPalette(plainPalette()), sim
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick() tea.Msg { return TickMsg(time.Now()) }

func TestModelTickAdvances(t *testing.T) {
	m, sim := newTestModel(t)

	if m.Init() == nil {
		t.Fatal("Init() should start ticking")
	}

	m, cmd := update(t, m, tick())
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, tick())

	if sim.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, expected 2", sim.FrameCount())
	}
	if m.Escaped() {
		t.Error("Escaped() = true, expected false")
	}
}

func TestModelKeyAppliesOnTick(t *testing.T) {
	m, sim := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if v := sim.Paddle().Velocity().X; v != 0 {
		t.Fatalf("paddle moved before tick: vx = %g", v)
	}

	m, _ = update(t, m, tick())
	update(t, m, tick())
	if v := sim.Paddle().Velocity().X; v >= 0 {
		t.Errorf("paddle vx = %g after held left, expected negative", v)
	}
}

func TestModelEscapeQuits(t *testing.T) {
	m, sim := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := update(t, m, tick())

	if cmd == nil {
		t.Fatal("escape should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, expected tea.QuitMsg", cmd())
	}
	if !m.Escaped() {
		t.Error("Escaped() = false, expected true")
	}
	if sim.State() != breakout.StateQuit {
		t.Errorf("State() = %v, expected %v", sim.State(), breakout.StateQuit)
	}
	if m.View() != "" {
		t.Error("View() after quitting should be empty")
	}
}

func TestModelReset(t *testing.T) {
	m, sim := newTestModel(t)
	for range 5 {
		m, _ = update(t, m, tick())
	}

	m, _ = update(t, m, runeKey('r'))
	update(t, m, tick())

	if sim.Stats().Resets != 1 {
		t.Errorf("Resets = %d, expected 1", sim.Stats().Resets)
	}
	if sim.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d, expected 0", sim.FrameCount())
	}
}

func TestModelViewAndResize(t *testing.T) {
	m, _ := newTestModel(t)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("View() has %d lines, expected 24", len(lines))
	}
	if !strings.Contains(lines[23], "reset") {
		t.Errorf("help line = %q, expected key help", lines[23])
	}
	if !strings.ContainsRune(m.View(), fillRune) {
		t.Error("View() should draw entities")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	lines = strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Errorf("View() after resize has %d lines, expected 12", len(lines))
	}
	if w := len([]rune(lines[0])); w != 40 {
		t.Errorf("row width = %d, expected 40", w)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestFinishSession(t *testing.T) {
	rec := storage.NewSession("ssh", "carol", "default")
	if got := finishSession(rec, nil); got.EndedAt.IsZero() || got.Frames != 0 {
		t.Errorf("finishSession(nil) = %+v, expected an end time and no frames", got)
	}

	sim := breakout.New(config.DefaultConfig())
	sim.Frame(core.NewInputFrame())
	sim.Frame(core.NewInputFrame())

	got := finishSession(rec, sim)
	if got.Frames != 2 || got.Destroyed != 1 || got.Escaped {
		t.Errorf("finishSession() = %+v, expected 2 frames and 1 destroyed", got)
	}
}
