package canvas

import "asciimaid/diagram"

// SizeOptions controls how large a canvas is made for a diagram.
type SizeOptions struct {
	MarginX          int // Columns added right of the widest element
	MarginY          int // Rows added below the lowest graph node
	MinWidth         int // Minimum width for graph diagrams
	MinHeight        int // Minimum height for all diagrams
	SequenceMinWidth int // Minimum width for sequence diagrams
	SequenceMarginY  int // Rows added below the last message
}

// DefaultSizeOptions returns the standard canvas margins and minimums.
func DefaultSizeOptions() SizeOptions {
	return SizeOptions{
		MarginX:          10,
		MarginY:          5,
		MinWidth:         80,
		MinHeight:        20,
		SequenceMinWidth: 50,
		SequenceMarginY:  10,
	}
}

// GraphSize computes the canvas dimensions for laid-out graph nodes.
// It must be called after layout and before any drawing.
func GraphSize(nodes []*diagram.Node, opts SizeOptions) (width, height int) {
	maxX, maxY := 0, 0
	for _, n := range nodes {
		maxX = max(maxX, n.X+n.Width)
		maxY = max(maxY, n.Y+n.Height)
	}
	return max(maxX+opts.MarginX, opts.MinWidth), max(maxY+opts.MarginY, opts.MinHeight)
}

// SequenceSize computes the canvas dimensions for a laid-out sequence diagram.
// The height leaves SequenceMarginY rows below the last message, and at least
// that many rows overall, so lifelines always extend past the final arrow.
func SequenceSize(participants []diagram.Participant, messages []diagram.Message, opts SizeOptions) (width, height int) {
	maxX := 0
	maxY := opts.SequenceMarginY
	for _, p := range participants {
		maxX = max(maxX, p.X+p.Width)
		maxY = max(maxY, p.Y+p.Height+opts.SequenceMarginY)
	}
	if len(messages) > 0 {
		maxY = max(maxY, messages[len(messages)-1].Y+opts.SequenceMarginY)
	}
	return max(maxX+opts.MarginX, opts.SequenceMinWidth), max(maxY, opts.MinHeight)
}
