package breakout

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BlockMarker is the layout character that places a block.
const BlockMarker = '-'

// Layout is a character grid describing block placement, one string per row.
// BlockMarker places a block; any other character leaves the cell empty.
// Rows may have different lengths.
type Layout []string

// ParseLayout reads a layout with one row per line. Every line is a row,
// whatever its first character; only trailing blank lines are dropped.
func ParseLayout(r io.Reader) (Layout, error) {
	var rows Layout
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("breakout: cannot read layout: %w", err)
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// ParseLayoutString parses a layout held in memory.
func ParseLayoutString(s string) (Layout, error) {
	return ParseLayout(strings.NewReader(s))
}

// Size returns the row count and the length of the longest row.
func (l Layout) Size() (rows, cols int) {
	for _, row := range l {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return len(l), cols
}

// Count returns the number of block cells.
func (l Layout) Count() int {
	n := 0
	for _, row := range l {
		n += strings.Count(row, string(BlockMarker))
	}
	return n
}

// Validate reports rows or columns that would place blocks beyond a field of
// maxCols by maxRows cells. Loading never calls it; hosts use it to warn.
func (l Layout) Validate(maxCols, maxRows int) error {
	rows, cols := l.Size()
	if rows == 0 || l.Count() == 0 {
		return fmt.Errorf("breakout: layout has no blocks")
	}
	if cols > maxCols {
		return fmt.Errorf("breakout: layout is %d columns wide, field fits %d", cols, maxCols)
	}
	if rows > maxRows {
		return fmt.Errorf("breakout: layout is %d rows tall, field fits %d", rows, maxRows)
	}
	return nil
}

// String renders the layout back to its text form.
func (l Layout) String() string {
	return strings.Join(l, "\n")
}
