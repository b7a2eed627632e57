package breakout

import "github.com/vovakirdan/brickbreak/internal/core"

// Ball is the moving square that bounces off walls, the paddle and blocks.
type Ball struct {
	Entity
	vel  core.Vec2
	phys Physics
}

// NewBall creates a square ball of the given size.
func NewBall(pos core.Vec2, size int, vel core.Vec2, color core.Color, phys Physics) *Ball {
	return &Ball{
		Entity: NewEntity(pos, size, size, color),
		vel:    vel,
		phys:   phys,
	}
}

// Velocity returns the current velocity in pixels per frame.
func (b *Ball) Velocity() core.Vec2 {
	return b.vel
}

// SetVelocity replaces the velocity.
func (b *Ball) SetVelocity(v core.Vec2) {
	b.vel = v
}

// Step reflects off the screen bounds and then moves by one frame.
//
// The bound tests look one frame ahead before moving, so the ball can still
// end a frame up to one displacement past an edge. Each axis flips at most
// once per step.
func (b *Ball) Step() {
	w, h := b.Size()
	pos := b.Position()
	sw, sh := float64(b.phys.ScreenW), float64(b.phys.ScreenH)

	dx := b.vel.X
	if b.phys.ParityBounce {
		dx = b.vel.Y
	}
	if pos.X+dx < 0 || pos.X+float64(w)+dx > sw {
		b.vel.X = -b.vel.X
	}

	if pos.Y+b.vel.Y < 0 || pos.Y+float64(h)+b.vel.Y > sh {
		b.vel.Y = -b.vel.Y
	}

	b.Move(b.vel)
}

// ReverseVelocity inverts the axis facing side and scales both axes.
// SideNone leaves the velocity untouched.
func (b *Ball) ReverseVelocity(side Side, scale float64) {
	switch {
	case side.Horizontal():
		b.vel = core.V(-b.vel.X*scale, b.vel.Y*scale)
	case side.Vertical():
		b.vel = core.V(b.vel.X*scale, -b.vel.Y*scale)
	}
}

// Bounce inverts the axis facing side without changing speed.
func (b *Ball) Bounce(side Side) {
	b.ReverseVelocity(side, 1)
}

// InheritVelocity adds src's velocity to the ball and caps the result.
func (b *Ball) InheritVelocity(src Mover) {
	b.vel = b.vel.Add(src.Velocity())

	limit := b.phys.VelocityCap
	if b.phys.OneSidedCap {
		if b.vel.X > limit {
			b.vel.X = limit
		}
		if b.vel.Y > limit {
			b.vel.Y = limit
		}
		return
	}
	b.vel.X = core.ClampF(b.vel.X, -limit, limit)
	b.vel.Y = core.ClampF(b.vel.Y, -limit, limit)
}
