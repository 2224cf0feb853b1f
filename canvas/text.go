package canvas

import (
	"github.com/mattn/go-runewidth"
)

// TextWidth returns the display width of a string in terminal cells.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// DrawText writes text starting at (x, y), one rune per cell, through the
// merge rules. Characters that land on occupied cells or off the canvas
// are dropped individually; a double-width rune needs both of its cells
// blank and on the canvas. When maxWidth is non-negative, at most
// maxWidth columns are written. It returns the number of columns consumed.
func (c *Canvas) DrawText(x, y int, text string, maxWidth int) int {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if maxWidth >= 0 && col+w > maxWidth {
			break
		}

		cx := x + col
		if w == 2 {
			// Both cells must be free or the row would grow a column.
			if c.InBounds(cx+1, y) && c.cells[y][cx+1] == Blank && c.SetChar(cx, y, r) {
				c.cells[y][cx+1] = continuation
			}
		} else {
			c.SetChar(cx, y, r)
		}
		col += w
	}
	return col
}
