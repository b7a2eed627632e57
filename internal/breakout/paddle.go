package breakout

import "github.com/vovakirdan/brickbreak/internal/core"

// Paddle is the player-controlled bar. It accelerates while a direction is
// held, coasts to a stop under friction and never leaves the screen.
type Paddle struct {
	Entity
	vel  core.Vec2
	phys Physics
}

// NewPaddle creates a paddle at rest.
func NewPaddle(pos core.Vec2, w, h int, color core.Color, phys Physics) *Paddle {
	return &Paddle{
		Entity: NewEntity(pos, w, h, color),
		phys:   phys,
	}
}

// Velocity returns the current velocity in pixels per frame.
func (p *Paddle) Velocity() core.Vec2 {
	return p.vel
}

// Step applies one frame of input, moves and clamps to the screen.
func (p *Paddle) Step(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		p.vel.X -= p.phys.Sensitivity
	case in.Has(core.ActionRight):
		p.vel.X += p.phys.Sensitivity
	default:
		p.vel.X *= 1 - p.phys.Friction
	}

	p.Move(p.vel)

	pos := p.Position()
	if pos.X < 0 {
		p.SetPosition(core.V(0, pos.Y))
		p.vel.X = 0
	}

	w, _ := p.Size()
	pos = p.Position()
	if pos.X+float64(w) > float64(p.phys.ScreenW) {
		p.SetPosition(core.V(float64(p.phys.ScreenW-w), pos.Y))
		p.vel.X = 0
	}
}
