// Package diagram contains the data model shared by the layout engines and renderers.
package diagram

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sizing rules for boxes created by the constructors below.
const (
	BoxHeight           = 3
	LabelPadding        = 4
	MinNodeWidth        = 8
	MinStateWidth       = 10
	MinParticipantWidth = 10
	PseudoStateWidth    = 3

	// PseudoStateID marks the start/end state of a state diagram.
	PseudoStateID = "[*]"
)

// Type identifies which family of diagram a Diagram holds.
type Type string

// Diagram type constants
const (
	TypeFlowchart Type = "flowchart"
	TypeState     Type = "stateDiagram"
	TypeSequence  Type = "sequenceDiagram"
)

// Direction is the flow direction of a graph diagram.
type Direction string

const (
	DirectionTD Direction = "TD" // top-down
	DirectionLR Direction = "LR" // left-right
)

// ParseDirection maps a direction keyword onto a supported Direction.
// TB is an alias of TD; anything unrecognised falls back to TD.
func ParseDirection(s string) Direction {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LR":
		return DirectionLR
	default:
		return DirectionTD
	}
}

// Shape is the outline variant of a graph node.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeRound
	ShapeRhombus
	ShapeRoundedRect
)

var shapeNames = map[Shape]string{
	ShapeRect:        "rect",
	ShapeRound:       "round",
	ShapeRhombus:     "rhombus",
	ShapeRoundedRect: "roundedRect",
}

// String returns the string representation of a Shape.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseShape converts a shape name back into a Shape.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return s, nil
		}
	}
	return ShapeRect, fmt.Errorf("unknown shape: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Node is a box in a flowchart or state diagram.
type Node struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Shape  Shape  `json:"shape" yaml:"shape"`
	X      int    `json:"x" yaml:"x"` // Set by layout engine
	Y      int    `json:"y" yaml:"y"` // Set by layout engine
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// NewNode creates a flowchart node sized to fit its label.
func NewNode(id, label string, shape Shape) *Node {
	return &Node{
		ID:     id,
		Label:  label,
		Shape:  shape,
		Width:  max(LabelWidth(label)+LabelPadding, MinNodeWidth),
		Height: BoxHeight,
	}
}

// NewStateNode creates a state node. The pseudo state [*] becomes a small
// unlabeled rhombus; everything else is a rounded rectangle.
func NewStateNode(id, label string) *Node {
	if id == PseudoStateID {
		return &Node{
			ID:     id,
			Shape:  ShapeRhombus,
			Width:  PseudoStateWidth,
			Height: BoxHeight,
		}
	}
	if label == "" {
		label = id
	}
	return &Node{
		ID:     id,
		Label:  label,
		Shape:  ShapeRoundedRect,
		Width:  max(LabelWidth(label)+LabelPadding, MinStateWidth),
		Height: BoxHeight,
	}
}

// Center returns the column and row of the node's midpoint.
func (n *Node) Center() (x, y int) {
	return n.X + n.Width/2, n.Y + n.Height/2
}

// Bottom returns the last row occupied by the node.
func (n *Node) Bottom() int {
	return n.Y + n.Height - 1
}

// Right returns the last column occupied by the node.
func (n *Node) Right() int {
	return n.X + n.Width - 1
}

// Edge is a directed connection between two nodes.
// Endpoints may name nodes that do not exist; renderers skip such edges.
type Edge struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"` // Arrow tag, e.g. "-->"
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Sequence int    `json:"sequence,omitempty" yaml:"sequence,omitempty"`
}

// Participant is a lifeline owner in a sequence diagram.
type Participant struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// NewParticipant creates a participant sized to fit its label.
// An empty label defaults to the id.
func NewParticipant(id, label string) Participant {
	if label == "" {
		label = id
	}
	return Participant{
		ID:     id,
		Label:  label,
		Width:  max(LabelWidth(label)+LabelPadding, MinParticipantWidth),
		Height: BoxHeight,
	}
}

// CenterX returns the column of the participant's lifeline.
func (p Participant) CenterX() int {
	return p.X + p.Width/2
}

// Message arrow tags that change how the arrowhead is drawn.
const (
	MessageSync      = "->>"
	MessageReply     = "-->"
	MessageCross     = "-x"
	MessageCrossDash = "--x"
)

// Message is a single arrow between two participants.
type Message struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Label    string `json:"label" yaml:"label"`
	Sequence int    `json:"sequence" yaml:"sequence"`
	Y        int    `json:"y" yaml:"y"` // Set by layout engine
}

// IsCross reports whether the message terminates its target.
func (m Message) IsCross() bool {
	return m.Type == MessageCross || m.Type == MessageCrossDash
}

// Diagram is a parsed diagram of any supported type.
// Graph diagrams use Nodes, Edges and Direction; sequence diagrams use
// Participants and Messages.
type Diagram struct {
	Type         Type          `json:"type" yaml:"type"`
	Direction    Direction     `json:"direction,omitempty" yaml:"direction,omitempty"`
	Nodes        *NodeMap      `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges        []Edge        `json:"edges,omitempty" yaml:"edges,omitempty"`
	Participants []Participant `json:"participants,omitempty" yaml:"participants,omitempty"`
	Messages     []Message     `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// NewGraph creates an empty flowchart or state diagram.
func NewGraph(t Type, dir Direction) *Diagram {
	return &Diagram{
		Type:      t,
		Direction: dir,
		Nodes:     NewNodeMap(),
	}
}

// NewSequence creates an empty sequence diagram.
func NewSequence() *Diagram {
	return &Diagram{Type: TypeSequence}
}

// IsSequence returns true if this is a sequence diagram
func (d *Diagram) IsSequence() bool {
	return d.Type == TypeSequence
}

// Participant returns the participant with the given id.
func (d *Diagram) Participant(id string) (Participant, bool) {
	for _, p := range d.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// AddParticipant appends a participant unless one with the same id exists.
func (d *Diagram) AddParticipant(p Participant) {
	if _, ok := d.Participant(p.ID); ok {
		return
	}
	d.Participants = append(d.Participants, p)
}

// LabelWidth returns the number of terminal columns a label occupies.
func LabelWidth(s string) int {
	return runewidth.StringWidth(s)
}
