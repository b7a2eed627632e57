// Package window hosts the simulation in a desktop window with Ebiten. Ebiten
// reports held keys directly and paces Update at a fixed tick rate, so every
// Update is exactly one simulation frame.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// KeyReader reports whether a key is currently held.
type KeyReader func(ebiten.Key) bool

// Bindings maps each action to the keys that trigger it.
type Bindings map[core.Action][]ebiten.Key

// DefaultBindings returns the default key bindings.
func DefaultBindings() Bindings {
	return Bindings{
		core.ActionLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
		core.ActionReset:  {ebiten.KeyR},
		core.ActionEscape: {ebiten.KeyEscape},
	}
}

// Poll returns the actions whose keys are held.
func (b Bindings) Poll(pressed KeyReader) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range b {
		for _, k := range keys {
			if pressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

// imageCanvas draws onto an Ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Clear(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c imageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

// Game adapts a Simulation to ebiten.Game.
type Game struct {
	sim      *breakout.Simulation
	bindings Bindings
	pressed  KeyReader
	escaped  bool
}

// NewGame creates a game reading the real keyboard.
func NewGame(sim *breakout.Simulation) *Game {
	return &Game{
		sim:      sim,
		bindings: DefaultBindings(),
		pressed:  ebiten.IsKeyPressed,
	}
}

// Update advances one frame. It ends the game when escape is held.
func (g *Game) Update() error {
	res := g.sim.Frame(g.bindings.Poll(g.pressed))
	if res.State == breakout.StateQuit {
		g.escaped = true
		return ebiten.Termination
	}
	return nil
}

// Draw renders the simulation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(imageCanvas{dst: screen})
}

// Layout keeps the logical screen at the playfield size; Ebiten scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.sim.Screen()
}

// Escaped reports whether the player left with escape.
func (g *Game) Escaped() bool {
	return g.escaped
}

// Run opens a window scaled by scale and plays sim until escape or the
// window closes. It returns breakout.ErrEscape when the player pressed escape.
func Run(sim *breakout.Simulation, cfg config.Config, scale int) error {
	w, h := sim.Screen()
	ebiten.SetWindowSize(w*max(scale, 1), h*max(scale, 1))
	ebiten.SetWindowTitle("brickbreak")
	ebiten.SetTPS(cfg.Screen.TickRate)

	g := NewGame(sim)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if g.Escaped() {
		return breakout.ErrEscape
	}
	return nil
}
