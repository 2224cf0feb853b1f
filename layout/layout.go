// Package layout assigns grid coordinates to diagram elements.
package layout

import "asciimaid/diagram"

// GraphOptions holds the spacing constants used to position graph nodes.
type GraphOptions struct {
	NodeSpacing   int // Gap between neighbouring nodes on the same level
	RankSpacing   int // TD: rows per level. LR: gap between stacked nodes
	CanvasWidth   int // Conceptual width TD levels are centred within
	CanvasHeight  int // Conceptual height LR levels are centred within
	MinMargin     int // Smallest offset a centred level may start at
	TopMargin     int // TD: row of level 0
	LRColumnWidth int // LR: minimum column width per level
	LRLeftMargin  int // LR: column of level 0
}

// DefaultGraphOptions returns the standard graph spacing.
func DefaultGraphOptions() GraphOptions {
	return GraphOptions{
		NodeSpacing:   10,
		RankSpacing:   8,
		CanvasWidth:   100,
		CanvasHeight:  30,
		MinMargin:     2,
		TopMargin:     2,
		LRColumnWidth: 20,
		LRLeftMargin:  5,
	}
}

// GraphLayout positions the nodes of flowcharts and state diagrams.
type GraphLayout struct {
	opts GraphOptions
}

// NewGraphLayout creates a GraphLayout with the given spacing.
func NewGraphLayout(opts GraphOptions) *GraphLayout {
	return &GraphLayout{opts: opts}
}

// Name returns the name of this layout algorithm.
func (g *GraphLayout) Name() string {
	return "layered"
}

// Layout assigns a level to every node of d and sets node coordinates
// according to d.Direction. It returns the computed ranking.
func (g *GraphLayout) Layout(d *diagram.Diagram) *Ranking {
	ranking := Rank(d.Nodes, d.Edges)
	groups := ranking.Groups(d.Nodes)

	if d.Direction == diagram.DirectionLR {
		g.positionHorizontal(groups)
	} else {
		g.positionVertical(groups)
	}

	return ranking
}

// centredStart returns where a group of the given extent starts when centred
// on span, never less than the minimum margin.
func (g *GraphLayout) centredStart(span, extent int) int {
	return max(g.opts.MinMargin, (span-extent)/2)
}
