package importer

import (
	"asciimaid/diagram"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// JSONImporter reads diagrams serialized by the JSON exporter, or written
// by hand in the same shape.
type JSONImporter struct{}

// NewJSONImporter creates a new JSON importer
func NewJSONImporter() *JSONImporter {
	return &JSONImporter{}
}

// CanImport reports whether content looks like a JSON object.
func (j *JSONImporter) CanImport(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), "{")
}

// Import decodes content and fills in any box sizes the input left out.
func (j *JSONImporter) Import(content string) (*diagram.Diagram, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDiagram
	}

	var d diagram.Diagram
	if err := json.Unmarshal([]byte(content), &d); err != nil {
		return nil, fmt.Errorf("decoding json diagram: %w", err)
	}

	switch d.Type {
	case diagram.TypeFlowchart, diagram.TypeState:
		if d.Nodes == nil || d.Nodes.Len() == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoNodes, d.Type)
		}
		d.Direction = diagram.ParseDirection(string(d.Direction))
		for _, n := range d.Nodes.Nodes() {
			sizeNode(d.Type, n)
		}
	case diagram.TypeSequence:
		if len(d.Participants) == 0 {
			return nil, fmt.Errorf("%w in sequence diagram", ErrNoNodes)
		}
		for i, p := range d.Participants {
			if p.Width <= 0 {
				sized := diagram.NewParticipant(p.ID, p.Label)
				sized.X, sized.Y = p.X, p.Y
				d.Participants[i] = sized
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, d.Type)
	}

	return &d, nil
}

// sizeNode applies the constructor sizing to a node decoded without a width.
func sizeNode(t diagram.Type, n *diagram.Node) {
	if n.Label == "" && n.ID != diagram.PseudoStateID {
		n.Label = n.ID
	}
	if n.Width > 0 && n.Height > 0 {
		return
	}

	var sized *diagram.Node
	if t == diagram.TypeState {
		sized = diagram.NewStateNode(n.ID, n.Label)
	} else {
		sized = diagram.NewNode(n.ID, n.Label, n.Shape)
	}
	n.Width, n.Height = sized.Width, sized.Height
	if t == diagram.TypeState {
		n.Shape = sized.Shape
	}
}

// GetFormatName returns the format name
func (j *JSONImporter) GetFormatName() string {
	return "json"
}

// GetFileExtensions returns common file extensions
func (j *JSONImporter) GetFileExtensions() []string {
	return []string{".json"}
}
