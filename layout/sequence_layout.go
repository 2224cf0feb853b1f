package layout

import "asciimaid/diagram"

// SequenceOptions holds the spacing constants for sequence diagrams.
type SequenceOptions struct {
	LeftMargin      int // Column of the first participant
	TopMargin       int // Row of every participant box
	ParticipantGap  int // Columns between neighbouring participant boxes
	FirstMessageRow int // Row of the first message arrow
	MessageHeight   int // Rows between consecutive messages
}

// DefaultSequenceOptions returns the standard sequence spacing.
func DefaultSequenceOptions() SequenceOptions {
	return SequenceOptions{
		LeftMargin:      5,
		TopMargin:       2,
		ParticipantGap:  15,
		FirstMessageRow: 8,
		MessageHeight:   4,
	}
}

// SequenceLayout implements a layout engine for UML sequence diagrams.
//
// The layout is linear: participants go left to right in first-seen order
// and messages top to bottom in insertion order. There is nothing to rank.
type SequenceLayout struct {
	opts SequenceOptions
}

// NewSequenceLayout creates a new sequence diagram layout engine
func NewSequenceLayout(opts SequenceOptions) *SequenceLayout {
	return &SequenceLayout{opts: opts}
}

// Name returns the name of this layout algorithm.
func (s *SequenceLayout) Name() string {
	return "sequence"
}

// Layout sets participant coordinates and message rows on d.
func (s *SequenceLayout) Layout(d *diagram.Diagram) {
	x := s.opts.LeftMargin
	for i := range d.Participants {
		p := &d.Participants[i]
		p.X = x
		p.Y = s.opts.TopMargin
		x += p.Width + s.opts.ParticipantGap
	}

	y := s.opts.FirstMessageRow
	for i := range d.Messages {
		d.Messages[i].Y = y
		y += s.opts.MessageHeight
	}
}
