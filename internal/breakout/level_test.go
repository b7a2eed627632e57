package breakout

import (
	"testing"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

var testGeometry = BlockGeometry{Width: 60, Height: 14, Padding: 1}

func TestLevelLoadSingleBlock(t *testing.T) {
	l := NewLevel(testGeometry, core.ColorRed)
	blocks := l.Load(Layout{".-.", "..."})

	if len(blocks) != 1 || l.Len() != 1 {
		t.Fatalf("Load() produced %d blocks, expected 1", len(blocks))
	}
	if r := blocks[0].Rect(); r != core.NewRect(61, 0, 60, 14) {
		t.Errorf("block rect = %+v, expected {61 0 60 14}", r)
	}
}

func TestLevelLoadOrderAndPositions(t *testing.T) {
	l := NewLevel(testGeometry, core.ColorRed)
	l.Load(Layout{"-.-", ".-", "", "x--"})

	expected := []core.Rect{
		core.NewRect(0, 0, 60, 14),
		core.NewRect(122, 0, 60, 14),
		core.NewRect(61, 15, 60, 14),
		core.NewRect(61, 45, 60, 14),
		core.NewRect(122, 45, 60, 14),
	}

	blocks := l.Blocks()
	if len(blocks) != len(expected) {
		t.Fatalf("Load() produced %d blocks, expected %d", len(blocks), len(expected))
	}
	for i, b := range blocks {
		if b.Rect() != expected[i] {
			t.Errorf("block %d rect = %+v, expected %+v", i, b.Rect(), expected[i])
		}
	}
}

func TestLevelLoadReplaces(t *testing.T) {
	l := NewLevel(testGeometry, core.ColorRed)
	first := l.Load(Layout{"---"})
	l.Load(Layout{"-"})

	if l.Len() != 1 {
		t.Errorf("Len() = %d after reload, expected 1", l.Len())
	}
	if len(first) != 3 {
		t.Errorf("earlier Load() result changed to %d blocks", len(first))
	}
}

func TestLevelLoadDefaultLayout(t *testing.T) {
	l := NewLevel(testGeometry, core.ColorRed)
	layout := Layout(config.DefaultLayout)
	l.Load(layout)

	if l.Len() != layout.Count() {
		t.Errorf("Len() = %d, expected %d", l.Len(), layout.Count())
	}
}

func TestLevelRemove(t *testing.T) {
	l := NewLevel(testGeometry, core.ColorRed)
	blocks := append([]*Block(nil), l.Load(Layout{"---"})...)

	l.Remove(blocks[1])
	if l.Len() != 2 {
		t.Fatalf("Len() = %d after Remove, expected 2", l.Len())
	}
	if l.Blocks()[0] != blocks[0] || l.Blocks()[1] != blocks[2] {
		t.Error("Remove() should keep the remaining blocks in order")
	}

	// Absent blocks are ignored
	l.Remove(blocks[1])
	l.Remove(&Block{})
	if l.Len() != 2 {
		t.Errorf("Len() = %d after removing absent blocks, expected 2", l.Len())
	}
}

func TestLevelDraw(t *testing.T) {
	l := NewLevel(testGeometry, core.ColorRed)
	blocks := append([]*Block(nil), l.Load(Layout{"--"})...)

	c := &recordingCanvas{}
	l.Draw(c)
	if len(c.rects) != 2 {
		t.Errorf("Draw() made %d calls, expected 2", len(c.rects))
	}

	for _, b := range blocks {
		l.Remove(b)
	}
	c = &recordingCanvas{}
	l.Draw(c)
	if len(c.rects) != 0 {
		t.Errorf("Draw() on an empty level made %d calls, expected 0", len(c.rects))
	}
}

func TestBlockGeometryCells(t *testing.T) {
	cols, rows := testGeometry.Cells(640, 600)
	if cols != 10 || rows != 40 {
		t.Errorf("Cells(640, 600) = (%d, %d), expected (10, 40)", cols, rows)
	}
}
