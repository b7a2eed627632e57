package breakout

import "github.com/vovakirdan/brickbreak/internal/core"

// Block is a static, destructible entity.
type Block struct {
	Entity
}

// BlockGeometry is the cell size and spacing of the block grid.
type BlockGeometry struct {
	Width   int
	Height  int
	Padding int
}

// Cells returns how many block cells fit in a screen of w by h pixels.
func (g BlockGeometry) Cells(w, h int) (cols, rows int) {
	// The last cell needs no trailing padding.
	cols = (w + g.Padding) / (g.Width + g.Padding)
	rows = (h + g.Padding) / (g.Height + g.Padding)
	return cols, rows
}

// Level is the ordered collection of remaining blocks.
type Level struct {
	geom   BlockGeometry
	color  core.Color
	blocks []*Block
}

// NewLevel creates an empty level.
func NewLevel(geom BlockGeometry, color core.Color) *Level {
	return &Level{geom: geom, color: color}
}

// Load replaces the blocks with those described by layout, scanning rows top
// to bottom and columns left to right.
func (l *Level) Load(layout Layout) []*Block {
	l.blocks = l.blocks[:0:0]
	stepX := l.geom.Width + l.geom.Padding
	stepY := l.geom.Height + l.geom.Padding

	for row, line := range layout {
		for col, ch := range []rune(line) {
			if ch != BlockMarker {
				continue
			}
			pos := core.V(float64(col*stepX), float64(row*stepY))
			l.blocks = append(l.blocks, &Block{
				Entity: NewEntity(pos, l.geom.Width, l.geom.Height, l.color),
			})
		}
	}
	return l.blocks
}

// Remove deletes b from the level. Removing a block that is not present does
// nothing.
func (l *Level) Remove(b *Block) {
	for i, cur := range l.blocks {
		if cur == b {
			l.blocks = append(l.blocks[:i], l.blocks[i+1:]...)
			return
		}
	}
}

// Blocks returns the remaining blocks in load order. The slice is shared with
// the level and must not be modified.
func (l *Level) Blocks() []*Block {
	return l.blocks
}

// Len returns the number of remaining blocks.
func (l *Level) Len() int {
	return len(l.blocks)
}

// Draw renders every remaining block.
func (l *Level) Draw(dst Canvas) {
	for _, b := range l.blocks {
		b.Draw(dst)
	}
}
