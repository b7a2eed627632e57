package breakout

import (
	"testing"

	"github.com/vovakirdan/brickbreak/internal/core"
)

func TestEntityMoveTranslatesRect(t *testing.T) {
	tests := []struct {
		name   string
		start  core.Vec2
		offset core.Vec2
	}{
		{"right and down", core.V(10, 20), core.V(5, 7)},
		{"negative offset", core.V(10, 20), core.V(-3, -20)},
		{"past the origin", core.V(2, 2), core.V(-10, -10)},
		{"zero", core.V(100, 100), core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity(tc.start, 8, 4, core.ColorRed)
			before := e.Rect()
			e.Move(tc.offset)

			expected := core.NewRect(before.X+int(tc.offset.X), before.Y+int(tc.offset.Y), before.W, before.H)
			if e.Rect() != expected {
				t.Errorf("Rect() after Move(%v) = %+v, expected %+v", tc.offset, e.Rect(), expected)
			}
		})
	}
}

func TestEntitySizeIsFixed(t *testing.T) {
	e := NewEntity(core.V(0, 0), 30, 3, core.ColorBlue)
	e.Move(core.V(12.5, -4))
	e.SetPosition(core.V(290, 550))

	if w, h := e.Size(); w != 30 || h != 3 {
		t.Errorf("Size() = (%d, %d), expected (30, 3)", w, h)
	}
	if r := e.Rect(); r != core.NewRect(290, 550, 30, 3) {
		t.Errorf("Rect() = %+v, expected {290 550 30 3}", r)
	}
}

func TestEntityDraw(t *testing.T) {
	e := NewEntity(core.V(4.7, 9.2), 3, 3, core.ColorGreen)
	c := &recordingCanvas{}
	e.Draw(c)

	if len(c.rects) != 1 {
		t.Fatalf("Draw() made %d calls, expected 1", len(c.rects))
	}
	if c.rects[0] != core.NewRect(4, 9, 3, 3) || c.colors[0] != core.ColorGreen {
		t.Errorf("Draw() filled %+v %v, expected {4 9 3 3} green", c.rects[0], c.colors[0])
	}
}
