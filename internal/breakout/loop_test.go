package breakout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// scriptedInput replays frames and then reports nothing held.
type scriptedInput struct {
	frames []core.InputFrame
	polls  int
}

func (s *scriptedInput) Poll() core.InputFrame {
	s.polls++
	if len(s.frames) == 0 {
		return core.NewInputFrame()
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

type countingPacer struct{ waits int }

func (p *countingPacer) Wait() { p.waits++ }

type failingPresenter struct{ recordingCanvas }

var errPresent = errors.New("present failed")

func (*failingPresenter) Present() error { return errPresent }

func TestLoopRunFrames(t *testing.T) {
	sim := New(config.DefaultConfig())
	in := &scriptedInput{}
	out := &recordingCanvas{}
	pacer := &countingPacer{}

	if err := NewLoop(sim, in, out, pacer).RunFrames(5); err != nil {
		t.Fatalf("RunFrames() = %v, expected nil", err)
	}
	if in.polls != 5 || out.presents != 5 || pacer.waits != 5 {
		t.Errorf("polls/presents/waits = %d/%d/%d, expected 5/5/5", in.polls, out.presents, pacer.waits)
	}
	if sim.FrameCount() != 5 {
		t.Errorf("FrameCount() = %d, expected 5", sim.FrameCount())
	}
	if len(out.clears) != 5 {
		t.Errorf("clears = %d, expected 5", len(out.clears))
	}
}

func TestLoopRunEscape(t *testing.T) {
	sim := New(config.DefaultConfig())
	in := &scriptedInput{frames: []core.InputFrame{
		core.NewInputFrame(),
		core.NewInputFrame(core.ActionRight),
		core.NewInputFrame(core.ActionEscape),
	}}
	out := &recordingCanvas{}

	err := NewLoop(sim, in, out, NoPacer{}).Run()
	if !errors.Is(err, ErrEscape) {
		t.Fatalf("Run() = %v, expected %v", err, ErrEscape)
	}
	if out.presents != 2 {
		t.Errorf("presents = %d, expected 2", out.presents)
	}
	if sim.State() != StateQuit {
		t.Errorf("State() = %v, expected %v", sim.State(), StateQuit)
	}
}

func TestLoopRunFramesStopsOnEscape(t *testing.T) {
	sim := New(config.DefaultConfig())
	in := &scriptedInput{frames: []core.InputFrame{core.NewInputFrame(core.ActionEscape)}}

	err := NewLoop(sim, in, &recordingCanvas{}, NoPacer{}).RunFrames(10)
	if !errors.Is(err, ErrEscape) {
		t.Errorf("RunFrames() = %v, expected %v", err, ErrEscape)
	}
	if in.polls != 1 {
		t.Errorf("polls = %d, expected 1", in.polls)
	}
}

func TestLoopResetContinues(t *testing.T) {
	sim := New(config.DefaultConfig())
	in := &scriptedInput{frames: []core.InputFrame{
		core.NewInputFrame(),
		core.NewInputFrame(core.ActionReset),
		core.NewInputFrame(),
	}}
	out := &recordingCanvas{}

	if err := NewLoop(sim, in, out, NoPacer{}).RunFrames(3); err != nil {
		t.Fatalf("RunFrames() = %v, expected nil", err)
	}
	if out.presents != 3 {
		t.Errorf("presents = %d, expected 3", out.presents)
	}
	if sim.Stats().Resets != 1 || sim.FrameCount() != 1 {
		t.Errorf("Resets = %d, FrameCount() = %d, expected 1 and 1", sim.Stats().Resets, sim.FrameCount())
	}
}

func TestLoopPresentError(t *testing.T) {
	sim := New(config.DefaultConfig())
	err := NewLoop(sim, &scriptedInput{}, &failingPresenter{}, NoPacer{}).RunFrames(1)
	if !errors.Is(err, errPresent) {
		t.Errorf("RunFrames() = %v, expected wrapped %v", err, errPresent)
	}
}
