// Package canvas provides the fixed-size character grid that diagrams are rasterized onto.
package canvas

import (
	"strings"
)

// Glyphs with special meaning to the merge rules.
const (
	Blank      = ' '
	Horizontal = '-'
	Vertical   = '|'
	Corner     = '+'

	ArrowDown  = 'v'
	ArrowUp    = '^'
	ArrowLeft  = '<'
	ArrowRight = '>'

	// continuation fills the second cell of a double-width rune.
	continuation = '\x00'
)

// Canvas is a height x width grid of runes, initialised to blanks.
//
// Every write goes through Merge, so later, lower-priority paints never
// clobber earlier geometry: crossing lines become corners, arrowheads win
// over lines, and text only lands on blank cells.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//
// Canvas is not safe for concurrent writes; each render owns its own.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
}

// New creates a blank canvas with the specified dimensions.
// Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}

	return &Canvas{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// InBounds reports whether (x, y) lies on the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the character at the given position.
// Returns ' ' (space) if position is out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if !c.InBounds(x, y) {
		return Blank
	}
	if r := c.cells[y][x]; r != continuation {
		return r
	}
	return Blank
}

// SetChar writes r at (x, y) according to the merge rules.
// Writes outside the canvas are dropped. It reports whether the cell changed
// or was confirmed by the write.
func (c *Canvas) SetChar(x, y int, r rune) bool {
	if !c.InBounds(x, y) {
		return false
	}
	merged, ok := Merge(c.cells[y][x], r)
	if ok {
		c.cells[y][x] = merged
	}
	return ok
}

// DrawHorizontalLine writes '-' from x1 to x2 inclusive on row y.
func (c *Canvas) DrawHorizontalLine(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.SetChar(x, y, Horizontal)
	}
}

// DrawVerticalLine writes '|' from y1 to y2 inclusive in column x.
func (c *Canvas) DrawVerticalLine(x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		c.SetChar(x, y, Vertical)
	}
}

// String returns the rows joined by newlines, without a trailing newline.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y, row := range c.cells {
		for _, r := range row {
			// The wide rune before it already covers this column.
			if r == continuation {
				continue
			}
			sb.WriteRune(r)
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Lines returns the canvas as one string per row.
func (c *Canvas) Lines() []string {
	if c.height == 0 {
		return nil
	}
	return strings.Split(c.String(), "\n")
}
