package render

import (
	"asciimaid/canvas"
	"asciimaid/diagram"
	"asciimaid/layout"
	"fmt"
)

// crossMarker ends a message that destroys or rejects its target.
const crossMarker = 'X'

// SequenceRenderer handles rendering of sequence diagrams
type SequenceRenderer struct {
	layout *layout.SequenceLayout
	size   canvas.SizeOptions
}

// NewSequenceRenderer creates a new sequence diagram renderer
func NewSequenceRenderer(opts Options) *SequenceRenderer {
	return &SequenceRenderer{
		layout: layout.NewSequenceLayout(opts.Sequence),
		size:   opts.Canvas,
	}
}

// CanRender returns true if this renderer can handle the given diagram type.
func (r *SequenceRenderer) CanRender(diagramType diagram.Type) bool {
	return diagramType == diagram.TypeSequence
}

// Render renders the sequence diagram and returns the string output.
func (r *SequenceRenderer) Render(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", ErrNilDiagram
	}
	if !r.CanRender(d.Type) {
		return "", fmt.Errorf("%w: sequence renderer cannot draw %q", ErrUnsupportedType, d.Type)
	}

	r.layout.Layout(d)
	return r.Paint(d).String(), nil
}

// Paint draws an already laid-out sequence diagram onto a fresh canvas.
func (r *SequenceRenderer) Paint(d *diagram.Diagram) *canvas.Canvas {
	width, height := canvas.SequenceSize(d.Participants, d.Messages, r.size)
	c := canvas.New(width, height)
	r.RenderToCanvas(d, c)
	return c
}

// RenderToCanvas draws a complete sequence diagram to the provided canvas.
// Participant boxes and lifelines go first so messages merge onto them.
func (r *SequenceRenderer) RenderToCanvas(d *diagram.Diagram, c *canvas.Canvas) {
	_, height := c.Size()

	for _, p := range d.Participants {
		drawBox(c, p.X, p.Y, p.Width, p.Height, NodeStyles[diagram.ShapeRect])
		drawLabel(c, p.X, p.Y, p.Width, p.Height, p.Label, 2)
	}
	r.drawLifelines(d.Participants, height, c)
	r.drawMessages(d, c)
}

// drawLifelines runs a vertical line from under each box to two rows above
// the bottom of the canvas.
func (r *SequenceRenderer) drawLifelines(participants []diagram.Participant, height int, c *canvas.Canvas) {
	for _, p := range participants {
		start := p.Y + p.Height
		end := height - 3
		if start > end {
			continue
		}
		c.DrawVerticalLine(p.CenterX(), start, end)
	}
}

// drawMessages draws each message on its row, skipping messages whose
// endpoints are not participants.
func (r *SequenceRenderer) drawMessages(d *diagram.Diagram, c *canvas.Canvas) {
	for _, m := range d.Messages {
		from, okFrom := d.Participant(m.From)
		to, okTo := d.Participant(m.To)
		if !okFrom || !okTo {
			continue
		}

		fromX, toX := from.CenterX(), to.CenterX()
		switch {
		case fromX == toX:
			c.SetChar(toX, m.Y, canvas.ArrowRight)
		case m.IsCross():
			r.drawCross(c, fromX, toX, m.Y)
		default:
			c.DrawHorizontalLine(fromX, toX, m.Y)
			c.SetChar(toX, m.Y, arrowToward(fromX, toX))
		}

		if m.Label != "" {
			left := min(fromX, toX)
			span := max(fromX, toX) - left
			c.DrawText(left+span/2-canvas.TextWidth(m.Label)/2, m.Y-1, m.Label, -1)
		}
	}
}

// drawCross stops the line one cell short of the target lifeline and marks
// that cell with X, since X may not overwrite the lifeline itself.
func (r *SequenceRenderer) drawCross(c *canvas.Canvas, fromX, toX, y int) {
	step := 1
	if toX < fromX {
		step = -1
	}
	markX := toX - step
	if markX != fromX {
		c.DrawHorizontalLine(fromX, markX-step, y)
	}
	c.SetChar(markX, y, crossMarker)
}

// arrowToward returns the arrowhead pointing from fromX at toX.
func arrowToward(fromX, toX int) rune {
	if toX < fromX {
		return canvas.ArrowLeft
	}
	return canvas.ArrowRight
}
