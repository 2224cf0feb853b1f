package render

import (
	"asciimaid/canvas"
	"asciimaid/diagram"
)

// NodeStyle defines the characters used to draw a node box
type NodeStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// NodeStyles holds the outline of every boxed shape. Boxed shapes share
// their sides and differ only in the four corners.
var NodeStyles = map[diagram.Shape]NodeStyle{
	diagram.ShapeRect: {
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  canvas.Horizontal,
		Vertical:    canvas.Vertical,
	},
	diagram.ShapeRound: {
		TopLeft:     '(',
		TopRight:    ')',
		BottomLeft:  '(',
		BottomRight: ')',
		Horizontal:  canvas.Horizontal,
		Vertical:    canvas.Vertical,
	},
	diagram.ShapeRoundedRect: {
		TopLeft:     '/',
		TopRight:    '\\',
		BottomLeft:  '\\',
		BottomRight: '/',
		Horizontal:  canvas.Horizontal,
		Vertical:    canvas.Vertical,
	},
}

// Rhombus markers, one at the midpoint of each side.
const (
	rhombusTop    = '/'
	rhombusBottom = '\\'
	rhombusLeft   = '<'
	rhombusRight  = '>'
)

// shapeDrawer draws the outline of one shape.
type shapeDrawer func(c *canvas.Canvas, n *diagram.Node)

// shapeDrawers maps each shape to its outline routine.
var shapeDrawers = map[diagram.Shape]shapeDrawer{
	diagram.ShapeRect:        boxDrawer(NodeStyles[diagram.ShapeRect]),
	diagram.ShapeRound:       boxDrawer(NodeStyles[diagram.ShapeRound]),
	diagram.ShapeRoundedRect: boxDrawer(NodeStyles[diagram.ShapeRoundedRect]),
	diagram.ShapeRhombus:     drawRhombus,
}

// drawShape draws n's outline. Unknown shapes are drawn as rectangles.
func drawShape(c *canvas.Canvas, n *diagram.Node) {
	draw, ok := shapeDrawers[n.Shape]
	if !ok {
		draw = shapeDrawers[diagram.ShapeRect]
	}
	draw(c, n)
}

// boxDrawer returns a drawer for a box with the given style.
func boxDrawer(style NodeStyle) shapeDrawer {
	return func(c *canvas.Canvas, n *diagram.Node) {
		drawBox(c, n.X, n.Y, n.Width, n.Height, style)
	}
}

// drawBox draws sides first, then corners.
func drawBox(c *canvas.Canvas, x, y, width, height int, style NodeStyle) {
	right := x + width - 1
	bottom := y + height - 1

	for i := x + 1; i < right; i++ {
		c.SetChar(i, y, style.Horizontal)
		c.SetChar(i, bottom, style.Horizontal)
	}
	for i := y + 1; i < bottom; i++ {
		c.SetChar(x, i, style.Vertical)
		c.SetChar(right, i, style.Vertical)
	}

	c.SetChar(x, y, style.TopLeft)
	c.SetChar(right, y, style.TopRight)
	c.SetChar(x, bottom, style.BottomLeft)
	c.SetChar(right, bottom, style.BottomRight)
}

// drawRhombus approximates a diamond with four markers.
func drawRhombus(c *canvas.Canvas, n *diagram.Node) {
	cx, cy := n.Center()

	c.SetChar(cx, n.Y, rhombusTop)
	c.SetChar(cx, n.Bottom(), rhombusBottom)
	c.SetChar(n.X, cy, rhombusLeft)
	c.SetChar(n.Right(), cy, rhombusRight)
}

// drawLabel centres label on the middle row of a box, writing at most
// width-inset columns so text never leaves the box.
func drawLabel(c *canvas.Canvas, x, y, width, height int, label string, inset int) {
	labelY := y + height/2
	labelX := x + max(2, floorDiv(width-canvas.TextWidth(label), 2))
	c.DrawText(labelX, labelY, label, max(width-inset, 0))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
