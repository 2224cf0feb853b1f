package render

import (
	"asciimaid/canvas"
	"asciimaid/diagram"
	"asciimaid/layout"
	"fmt"
)

// GraphRenderer handles rendering of flowcharts and state diagrams.
type GraphRenderer struct {
	layout *layout.GraphLayout
	size   canvas.SizeOptions
}

// NewGraphRenderer creates a graph renderer with the given options.
func NewGraphRenderer(opts Options) *GraphRenderer {
	return &GraphRenderer{
		layout: layout.NewGraphLayout(opts.Graph),
		size:   opts.Canvas,
	}
}

// CanRender returns true for flowcharts and state diagrams.
func (r *GraphRenderer) CanRender(diagramType diagram.Type) bool {
	return diagramType == diagram.TypeFlowchart || diagramType == diagram.TypeState
}

// Render lays out d and returns its ASCII drawing.
func (r *GraphRenderer) Render(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", ErrNilDiagram
	}
	if !r.CanRender(d.Type) {
		return "", fmt.Errorf("%w: graph renderer cannot draw %q", ErrUnsupportedType, d.Type)
	}

	r.layout.Layout(d)
	return r.Paint(d).String(), nil
}

// Paint draws an already laid-out diagram onto a fresh canvas sized to fit it.
// The diagram is only read.
func (r *GraphRenderer) Paint(d *diagram.Diagram) *canvas.Canvas {
	nodes := d.Nodes.Nodes()
	width, height := canvas.GraphSize(nodes, r.size)
	c := canvas.New(width, height)
	r.RenderToCanvas(d, c)
	return c
}

// RenderToCanvas draws all nodes, then all edges in list order.
func (r *GraphRenderer) RenderToCanvas(d *diagram.Diagram, c *canvas.Canvas) {
	for _, n := range d.Nodes.Nodes() {
		drawNode(c, n)
	}

	for _, e := range d.Edges {
		from, okFrom := d.Nodes.Get(e.From)
		to, okTo := d.Nodes.Get(e.To)
		if !okFrom || !okTo {
			continue
		}
		if d.Direction == diagram.DirectionLR {
			routeLR(c, from, to, e.Label)
		} else {
			routeTD(c, from, to, e.Label)
		}
	}
}

// drawNode draws the outline of n and its label.
func drawNode(c *canvas.Canvas, n *diagram.Node) {
	drawShape(c, n)
	if n.Label != "" {
		drawLabel(c, n.X, n.Y, n.Width, n.Height, n.Label, 4)
	}
}
