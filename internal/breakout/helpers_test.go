package breakout

import "github.com/vovakirdan/brickbreak/internal/core"

// recordingCanvas remembers every draw call.
type recordingCanvas struct {
	clears   []core.Color
	rects    []core.Rect
	colors   []core.Color
	presents int
}

func (c *recordingCanvas) Clear(col core.Color) {
	c.clears = append(c.clears, col)
	c.rects = c.rects[:0]
	c.colors = c.colors[:0]
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.rects = append(c.rects, r)
	c.colors = append(c.colors, col)
}

func (c *recordingCanvas) Present() error {
	c.presents++
	return nil
}

type rectOnly core.Rect

func (r rectOnly) Rect() core.Rect { return core.Rect(r) }

type fixedMover core.Vec2

func (m fixedMover) Velocity() core.Vec2 { return core.Vec2(m) }

func near(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}

func nearVec(a, b core.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func testBall(pos, vel core.Vec2, phys Physics) *Ball {
	return NewBall(pos, 3, vel, core.ColorGreen, phys)
}

func testPaddle(pos core.Vec2, phys Physics) *Paddle {
	return NewPaddle(pos, 30, 3, core.ColorBlue, phys)
}

func fixedPhysics() Physics {
	p := DefaultPhysics()
	p.ParityBounce = false
	p.OneSidedCap = false
	return p
}
