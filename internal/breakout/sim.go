package breakout

import (
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// State is the simulation's run state.
type State int

const (
	StateRunning State = iota // Frames advance
	StateQuit                 // Escape was pressed; frames are ignored
)

// String returns the state name.
func (s State) String() string {
	if s == StateQuit {
		return "quit"
	}
	return "running"
}

// FrameResult describes what happened during one frame.
type FrameResult struct {
	State     State
	Reset     bool // Entities were rebuilt instead of stepped
	PaddleHit Side // Side of the paddle the ball struck, SideNone if missed
	Destroyed int  // Blocks removed this frame
}

// Stats are cumulative counters across resets.
type Stats struct {
	Frames    uint64
	Resets    int
	Destroyed int
}

// Simulation owns the ball, paddle and level and advances them one frame at a
// time. It is the only owner of its entities and is not safe for concurrent use.
type Simulation struct {
	cfg    config.Config
	phys   Physics
	layout Layout

	ball   *Ball
	paddle *Paddle
	level  *Level

	state State
	frame uint64 // Frames since the last reset
	stats Stats
}

// New creates a running simulation with the config's layout.
func New(cfg config.Config) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		phys:   PhysicsFrom(cfg),
		layout: Layout(cfg.Layout),
	}
	s.Reset()
	return s
}

// SetLayout replaces the layout used by Reset and resets.
func (s *Simulation) SetLayout(layout Layout) {
	s.layout = layout
	s.Reset()
}

// Reset discards the ball, paddle and level and builds fresh ones from the
// config. It is the only construction path.
func (s *Simulation) Reset() {
	c := s.cfg
	s.ball = NewBall(c.Ball.Start, c.Ball.Size, c.Ball.Velocity, c.Colors.Ball, s.phys)
	s.paddle = NewPaddle(c.Paddle.Start, c.Paddle.Width, c.Paddle.Height, c.Colors.Paddle, s.phys)
	s.level = NewLevel(s.Geometry(), c.Colors.Block)
	s.level.Load(s.layout)
	s.state = StateRunning
	s.frame = 0
}

// Frame advances the simulation by one frame of input.
//
// Order: escape, reset, ball step, paddle step, ball against paddle, ball
// against every remaining block in load order.
func (s *Simulation) Frame(in core.InputFrame) FrameResult {
	if s.state == StateQuit {
		return FrameResult{State: StateQuit}
	}
	if in.Has(core.ActionEscape) {
		s.state = StateQuit
		return FrameResult{State: StateQuit}
	}
	if in.Has(core.ActionReset) {
		s.Reset()
		s.stats.Resets++
		return FrameResult{State: s.state, Reset: true}
	}

	s.frame++
	s.stats.Frames++

	s.ball.Step()
	s.paddle.Step(in)

	res := FrameResult{State: s.state}

	if side := Collides(s.ball, s.paddle); side != SideNone {
		s.ball.ReverseVelocity(side, s.phys.SpeedScale)
		s.ball.InheritVelocity(s.paddle)
		res.PaddleHit = side
	}

	// Iterate a copy so removal does not skip the next block.
	blocks := append([]*Block(nil), s.level.Blocks()...)
	for _, b := range blocks {
		side := Collides(s.ball, b)
		if side == SideNone {
			continue
		}
		s.level.Remove(b)
		s.ball.Bounce(side)
		res.Destroyed++
	}
	s.stats.Destroyed += res.Destroyed

	return res
}

// Render clears dst and draws the ball, the paddle and the remaining blocks.
func (s *Simulation) Render(dst Canvas) {
	dst.Clear(s.cfg.Colors.Background)
	s.ball.Draw(dst)
	s.paddle.Draw(dst)
	s.level.Draw(dst)
}

// Geometry returns the block grid geometry.
func (s *Simulation) Geometry() BlockGeometry {
	return BlockGeometry{
		Width:   s.cfg.Blocks.Width,
		Height:  s.cfg.Blocks.Height,
		Padding: s.cfg.Blocks.Padding,
	}
}

// Ball returns the ball.
func (s *Simulation) Ball() *Ball { return s.ball }

// Paddle returns the paddle.
func (s *Simulation) Paddle() *Paddle { return s.paddle }

// Level returns the level.
func (s *Simulation) Level() *Level { return s.level }

// Layout returns the layout Reset loads.
func (s *Simulation) Layout() Layout { return s.layout }

// State returns the run state.
func (s *Simulation) State() State { return s.state }

// FrameCount returns the frames stepped since the last reset.
func (s *Simulation) FrameCount() uint64 { return s.frame }

// Stats returns the cumulative counters.
func (s *Simulation) Stats() Stats { return s.stats }

// Screen returns the playfield size in pixels.
func (s *Simulation) Screen() (int, int) {
	return s.cfg.Screen.Width, s.cfg.Screen.Height
}
