// Package core provides fundamental types and utilities shared by the simulation
// and its hosts. It has no external dependencies (especially no Bubble Tea or
// Ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in pixel units. Used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2 with the given components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect represents an axis-aligned rectangle in integer pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rectangle whose top-left corner is the truncated position.
func RectAt(pos Vec2, w, h int) Rect {
	return Rect{X: trunc(pos.X), Y: trunc(pos.Y), W: w, H: h}
}

func trunc(f float64) int {
	return int(math.Trunc(f))
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// MidLeft returns the midpoint of the left edge.
func (r Rect) MidLeft() (int, int) {
	return r.X, r.Y + r.H/2
}

// MidRight returns the midpoint of the right edge.
// It lies on the exclusive edge, one pixel outside the rectangle itself.
func (r Rect) MidRight() (int, int) {
	return r.Right(), r.Y + r.H/2
}

// MidTop returns the midpoint of the top edge.
func (r Rect) MidTop() (int, int) {
	return r.X + r.W/2, r.Y
}

// MidBottom returns the midpoint of the bottom edge.
func (r Rect) MidBottom() (int, int) {
	return r.X + r.W/2, r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
