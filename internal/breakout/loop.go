package breakout

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// ErrEscape is returned by Loop.Run when the player presses escape.
var ErrEscape = errors.New("breakout: escape pressed")

// InputSource supplies the key state for the next frame.
type InputSource interface {
	Poll() core.InputFrame
}

// Presenter is a Canvas that can show a finished frame.
type Presenter interface {
	Canvas
	Present() error
}

// Pacer blocks until the next frame is due. It always returns.
type Pacer interface {
	Wait()
}

// Loop drives a Simulation with pull-style collaborators: poll input, step,
// render, present, wait. Hosts with their own event loop (Bubble Tea, Ebiten)
// call Simulation.Frame and Simulation.Render directly instead.
type Loop struct {
	sim   *Simulation
	input InputSource
	out   Presenter
	pacer Pacer
}

// NewLoop wires a simulation to its collaborators.
func NewLoop(sim *Simulation, input InputSource, out Presenter, pacer Pacer) *Loop {
	return &Loop{sim: sim, input: input, out: out, pacer: pacer}
}

// Run advances frames until escape and returns ErrEscape.
func (l *Loop) Run() error {
	for {
		if err := l.step(); err != nil {
			return err
		}
	}
}

// RunFrames advances at most n frames. It returns ErrEscape if escape ends
// the run early and nil otherwise.
func (l *Loop) RunFrames(n int) error {
	for range n {
		if err := l.step(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) step() error {
	res := l.sim.Frame(l.input.Poll())
	if res.State == StateQuit {
		return ErrEscape
	}

	l.sim.Render(l.out)
	if err := l.out.Present(); err != nil {
		return fmt.Errorf("breakout: cannot present frame: %w", err)
	}

	l.pacer.Wait()
	return nil
}

// TickerPacer paces frames with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer for the given frames per second.
func NewTickerPacer(rate int) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Wait blocks until the next tick.
func (p *TickerPacer) Wait() {
	<-p.ticker.C
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// NoPacer runs frames back to back.
type NoPacer struct{}

// Wait returns immediately.
func (NoPacer) Wait() {}
