package export

import (
	"asciimaid/diagram"
	"asciimaid/importer"
	"fmt"
	"strings"
)

// MermaidExporter exports diagrams to Mermaid syntax
type MermaidExporter struct{}

// NewMermaidExporter creates a new Mermaid exporter
func NewMermaidExporter() *MermaidExporter {
	return &MermaidExporter{}
}

// Export converts the diagram to Mermaid syntax
func (e *MermaidExporter) Export(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", fmt.Errorf("diagram is nil")
	}

	switch d.Type {
	case diagram.TypeSequence:
		if len(d.Participants) == 0 {
			return "", fmt.Errorf("diagram has no participants")
		}
		return e.exportSequence(d), nil
	case diagram.TypeState:
		if d.Nodes.Len() == 0 {
			return "", fmt.Errorf("diagram has no nodes")
		}
		return e.exportState(d), nil
	case diagram.TypeFlowchart:
		if d.Nodes.Len() == 0 {
			return "", fmt.Errorf("diagram has no nodes")
		}
		return e.exportFlowchart(d), nil
	default:
		return "", fmt.Errorf("unsupported diagram type: %q", d.Type)
	}
}

// exportSequence exports a sequence diagram to Mermaid syntax
func (e *MermaidExporter) exportSequence(d *diagram.Diagram) string {
	var sb strings.Builder
	sb.WriteString("sequenceDiagram\n")

	for _, p := range d.Participants {
		if p.Label != "" && p.Label != p.ID {
			fmt.Fprintf(&sb, "    participant %s as %s\n", p.ID, p.Label)
		} else {
			fmt.Fprintf(&sb, "    participant %s\n", p.ID)
		}
	}

	if len(d.Messages) > 0 {
		sb.WriteString("\n")
	}

	for _, m := range d.Messages {
		arrow := m.Type
		if arrow == "" {
			arrow = diagram.MessageSync
		}
		if m.Label != "" {
			fmt.Fprintf(&sb, "    %s%s%s: %s\n", m.From, arrow, m.To, m.Label)
		} else {
			fmt.Fprintf(&sb, "    %s%s%s\n", m.From, arrow, m.To)
		}
	}

	return sb.String()
}

// exportState exports a state diagram to Mermaid syntax
func (e *MermaidExporter) exportState(d *diagram.Diagram) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	for _, n := range d.Nodes.Nodes() {
		if n.ID == diagram.PseudoStateID || n.Label == "" || n.Label == n.ID {
			continue
		}
		fmt.Fprintf(&sb, "    state %q as %s\n", n.Label, n.ID)
	}

	for _, edge := range d.Edges {
		if edge.Label != "" {
			fmt.Fprintf(&sb, "    %s --> %s : %s\n", edge.From, edge.To, edge.Label)
		} else {
			fmt.Fprintf(&sb, "    %s --> %s\n", edge.From, edge.To)
		}
	}

	return sb.String()
}

// exportFlowchart exports a flowchart to Mermaid syntax
func (e *MermaidExporter) exportFlowchart(d *diagram.Diagram) string {
	var sb strings.Builder
	dir := d.Direction
	if dir == "" {
		dir = diagram.DirectionTD
	}
	fmt.Fprintf(&sb, "graph %s\n", dir)

	// Declare every node first so labels and insertion order survive.
	for _, n := range d.Nodes.Nodes() {
		fmt.Fprintf(&sb, "    %s%s\n", n.ID, e.formatNodeWithShape(n.Label, n.Shape))
	}

	if len(d.Edges) > 0 {
		sb.WriteString("\n")
	}

	for _, edge := range d.Edges {
		connStyle := edge.Type
		if !importer.IsFlowArrow(connStyle) {
			connStyle = "-->"
		}

		if edge.Label != "" {
			fmt.Fprintf(&sb, "    %s %s|%s| %s\n", edge.From, connStyle, edge.Label, edge.To)
		} else {
			fmt.Fprintf(&sb, "    %s %s %s\n", edge.From, connStyle, edge.To)
		}
	}

	return sb.String()
}

// formatNodeWithShape wraps a label in the brackets for its shape.
func (e *MermaidExporter) formatNodeWithShape(label string, shape diagram.Shape) string {
	switch shape {
	case diagram.ShapeRound, diagram.ShapeRoundedRect:
		return "(" + label + ")"
	case diagram.ShapeRhombus:
		return "{" + label + "}"
	default:
		return "[" + label + "]"
	}
}

// GetFileExtension returns the recommended file extension
func (e *MermaidExporter) GetFileExtension() string {
	return ".mmd"
}

// GetFormatName returns the format name
func (e *MermaidExporter) GetFormatName() string {
	return "Mermaid"
}
