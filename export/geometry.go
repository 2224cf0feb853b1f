package export

import (
	"asciimaid/canvas"
	"asciimaid/diagram"
	"asciimaid/layout"
	"asciimaid/render"
	"fmt"
)

// Size is the canvas a diagram is rendered onto.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// PlacedNode is a laid-out node together with its level.
type PlacedNode struct {
	diagram.Node `yaml:",inline"`
	Level        int `json:"level" yaml:"level"`
}

// Geometry is the laid-out form of a diagram: everything the renderer
// reads, with coordinates filled in.
type Geometry struct {
	Type         diagram.Type          `json:"type" yaml:"type"`
	Engine       string                `json:"engine" yaml:"engine"`
	Direction    diagram.Direction     `json:"direction,omitempty" yaml:"direction,omitempty"`
	Canvas       Size                  `json:"canvas" yaml:"canvas"`
	Nodes        []PlacedNode          `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges        []diagram.Edge        `json:"edges,omitempty" yaml:"edges,omitempty"`
	Participants []diagram.Participant `json:"participants,omitempty" yaml:"participants,omitempty"`
	Messages     []diagram.Message     `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Layout runs the layout engine for d and collects the result.
func Layout(d *diagram.Diagram, opts render.Options) (*Geometry, error) {
	if d == nil {
		return nil, fmt.Errorf("diagram is nil")
	}

	g := &Geometry{Type: d.Type}

	switch d.Type {
	case diagram.TypeFlowchart, diagram.TypeState:
		engine := layout.NewGraphLayout(opts.Graph)
		ranking := engine.Layout(d)
		g.Engine = engine.Name()
		nodes := d.Nodes.Nodes()
		g.Direction = d.Direction
		g.Canvas.Width, g.Canvas.Height = canvas.GraphSize(nodes, opts.Canvas)
		for _, n := range nodes {
			g.Nodes = append(g.Nodes, PlacedNode{Node: *n, Level: ranking.Level[n.ID]})
		}
		g.Edges = d.Edges

	case diagram.TypeSequence:
		engine := layout.NewSequenceLayout(opts.Sequence)
		engine.Layout(d)
		g.Engine = engine.Name()
		g.Canvas.Width, g.Canvas.Height = canvas.SequenceSize(d.Participants, d.Messages, opts.Canvas)
		g.Participants = d.Participants
		g.Messages = d.Messages

	default:
		return nil, fmt.Errorf("%w: %q", render.ErrUnsupportedType, d.Type)
	}

	return g, nil
}
