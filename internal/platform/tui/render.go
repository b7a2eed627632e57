package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// fillRune is drawn for every cell an entity covers.
const fillRune = '█'

var ansiCodes = map[core.Color]string{
	core.ColorBlack:   "0",
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
}

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds styles for r. A nil renderer uses the default one, which
// writes to stdout; SSH sessions pass the session's renderer.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{core.ColorDefault: r.NewStyle()}
	for c, code := range ansiCodes {
		p[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// CellCanvas draws the pixel playfield onto a cell Screen, scaling every
// rectangle to the cells it touches. Anything visible covers at least one cell.
type CellCanvas struct {
	screen *core.Screen
	fieldW int
	fieldH int
}

// NewCellCanvas creates a canvas for a fieldW x fieldH pixel playfield shown
// in cols x rows cells.
func NewCellCanvas(fieldW, fieldH, cols, rows int) *CellCanvas {
	return &CellCanvas{
		screen: core.NewScreen(cols, rows),
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// Resize changes the number of cells.
func (c *CellCanvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Screen returns the cell buffer.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}

// Clear blanks every cell with the background colour.
func (c *CellCanvas) Clear(col core.Color) {
	c.screen.Fill(' ', col)
}

// FillRect fills the cells covered by the pixel rectangle r.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.screen.DrawRect(c.CellRect(r), fillRune, col)
}

// Present does nothing; the screen is complete once drawing returns.
func (c *CellCanvas) Present() error {
	return nil
}

// CellRect maps a pixel rectangle to the cell rectangle that covers it.
func (c *CellCanvas) CellRect(r core.Rect) core.Rect {
	cols, rows := c.screen.Width(), c.screen.Height()
	x0 := floorDiv(r.X*cols, c.fieldW)
	y0 := floorDiv(r.Y*rows, c.fieldH)
	x1 := ceilDiv(r.Right()*cols, c.fieldW)
	y1 := ceilDiv(r.Bottom()*rows, c.fieldH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
