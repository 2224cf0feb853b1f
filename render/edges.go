package render

import (
	"asciimaid/canvas"
	"asciimaid/diagram"
)

// routeTD draws a vertical, horizontal, vertical connector between two
// nodes of a top-down graph. Each vertical run starts one cell outside its
// box so borders are left alone; the arrowhead lands on the target border.
func routeTD(c *canvas.Canvas, from, to *diagram.Node, label string) {
	fromX, _ := from.Center()
	toX, _ := to.Center()

	var fromStart, toEnd, arrowY int
	arrow := canvas.ArrowDown

	switch {
	case to.Y == from.Y:
		// Same row: leave and enter through the bottom, turning below both.
		fromStart = from.Bottom() + 1
		toEnd = to.Bottom() + 1
		arrowY = to.Bottom()
		arrow = canvas.ArrowUp
	case to.Y < from.Y:
		fromStart = from.Y - 1
		toEnd = to.Bottom() + 1
		arrowY = to.Bottom()
		arrow = canvas.ArrowUp
	default:
		fromStart = from.Bottom() + 1
		toEnd = to.Y - 1
		arrowY = to.Y
	}
	midY := floorDiv(fromStart+toEnd, 2)

	c.DrawVerticalLine(fromX, fromStart, midY)
	if fromX != toX {
		c.DrawHorizontalLine(fromX, toX, midY)
	}
	c.DrawVerticalLine(toX, toEnd, midY)
	c.SetChar(toX, arrowY, arrow)

	if label == "" {
		return
	}
	if fromX == toX {
		c.DrawText(fromX+2, midY, label, -1)
		return
	}
	left := min(fromX, toX)
	span := max(fromX, toX) - left
	c.DrawText(left+span/2-canvas.TextWidth(label)/2, midY-1, label, -1)
}

// routeLR draws a horizontal, vertical, horizontal connector between two
// nodes of a left-right graph, bending on a midline column.
func routeLR(c *canvas.Canvas, from, to *diagram.Node, label string) {
	_, fromY := from.Center()
	_, toY := to.Center()

	switch {
	case to.X > from.Right():
		midX := from.Right() + floorDiv(to.X-from.Right(), 2)
		drawElbow(c, from.Right()+1, midX, to.X-1, fromY, toY)
		c.SetChar(to.X-2, toY, canvas.ArrowRight)
		c.SetChar(to.X-1, toY, canvas.ArrowRight)
		if label != "" {
			c.DrawText(midX+1, toY-1, label, -1)
		}

	case to.Right() < from.X:
		midX := to.Right() + floorDiv(from.X-to.Right(), 2)
		drawElbow(c, from.X-1, midX, to.Right()+1, fromY, toY)
		c.SetChar(to.Right()+2, toY, canvas.ArrowLeft)
		c.SetChar(to.Right()+1, toY, canvas.ArrowLeft)
		if label != "" {
			c.DrawText(midX-canvas.TextWidth(label), toY-1, label, -1)
		}

	default:
		// Same column: loop around the right-hand side.
		bendX := max(from.Right(), to.Right()) + 2
		drawElbow(c, from.Right()+1, bendX, to.Right()+1, fromY, toY)
		c.SetChar(to.Right()+1, toY, canvas.ArrowLeft)
		if label != "" {
			c.DrawText(bendX+1, toY-1, label, -1)
		}
	}
}

// drawElbow draws a horizontal run on fromY from startX to bendX, a vertical
// run on bendX between the rows, and a horizontal run on toY from bendX to
// endX. The bends resolve to corners through the merge rules.
func drawElbow(c *canvas.Canvas, startX, bendX, endX, fromY, toY int) {
	c.DrawHorizontalLine(startX, bendX, fromY)
	if fromY != toY {
		c.DrawVerticalLine(bendX, fromY, toY)
		c.SetChar(bendX, fromY, canvas.Corner)
		c.SetChar(bendX, toY, canvas.Corner)
	}
	c.DrawHorizontalLine(bendX, endX, toY)
}
