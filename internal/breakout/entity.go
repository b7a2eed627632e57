// Package breakout implements the brick-breaker simulation: entity motion,
// wall reflection, paddle-to-ball velocity transfer and edge-midpoint collision
// against the paddle and a destructible block grid.
//
// The package is host-agnostic. Input arrives as core.InputFrame snapshots and
// drawing goes through the Canvas interface, so the same Simulation runs in a
// terminal, a window, over SSH or headless in tests.
package breakout

import "github.com/vovakirdan/brickbreak/internal/core"

// Canvas is the rendering collaborator a host provides for one frame.
type Canvas interface {
	// Clear fills the whole frame with a colour.
	Clear(c core.Color)
	// FillRect fills a pixel rectangle with a solid colour.
	FillRect(r core.Rect, c core.Color)
}

// Collidable is anything with a rectangle that collision can probe.
type Collidable interface {
	Rect() core.Rect
}

// Drawable is anything that can put itself on a Canvas.
type Drawable interface {
	Draw(dst Canvas)
}

// Mover is anything with a velocity that can be inherited.
type Mover interface {
	Velocity() core.Vec2
}

// Entity is the shared rectangle component of every simulated object.
// Its size is fixed at construction; only the position changes.
type Entity struct {
	pos   core.Vec2
	w, h  int
	color core.Color
}

// NewEntity creates an entity with its top-left corner at pos.
func NewEntity(pos core.Vec2, w, h int, color core.Color) Entity {
	return Entity{pos: pos, w: w, h: h, color: color}
}

// Position returns the top-left corner.
func (e *Entity) Position() core.Vec2 {
	return e.pos
}

// Size returns width and height in pixels.
func (e *Entity) Size() (int, int) {
	return e.w, e.h
}

// Color returns the fill colour.
func (e *Entity) Color() core.Color {
	return e.color
}

// Rect returns the pixel rectangle at the current position.
func (e *Entity) Rect() core.Rect {
	return core.RectAt(e.pos, e.w, e.h)
}

// SetPosition moves the top-left corner to pos.
func (e *Entity) SetPosition(pos core.Vec2) {
	e.pos = pos
}

// Move adds offset to the position without any bounds checking.
func (e *Entity) Move(offset core.Vec2) {
	e.pos = e.pos.Add(offset)
}

// Draw fills the entity's rectangle with its colour.
func (e *Entity) Draw(dst Canvas) {
	dst.FillRect(e.Rect(), e.color)
}
