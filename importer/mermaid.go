package importer

import (
	"asciimaid/diagram"
	"asciimaid/logging"
	"fmt"
	"regexp"
	"strings"
)

// Link arrows: solid and long links, bidirectional, thick, dotted, open.
const flowArrow = `<?-{2,}>|-{3,}|<?={2,}>|<?-\.+->|\.->\.`

var (
	flowDirectionPattern = regexp.MustCompile(`(?i)(?:graph|flowchart)\s+(\w+)`)

	// ID, optional shape, arrow, optional |label|, ID, optional shape.
	// A line may hold several.
	flowEdgePattern  = regexp.MustCompile(`([A-Za-z0-9_]+)(\[[^\]]*\]|\([^)]*\)|\{[^}]*\})?\s*(` + flowArrow + `)\s*(?:\|([^|]*)\|)?\s*([A-Za-z0-9_]+)(\[[^\]]*\]|\([^)]*\)|\{[^}]*\})?`)
	flowNodePattern  = regexp.MustCompile(`([A-Za-z0-9_]+)(\[[^\]]*\]|\([^)]*\)|\{[^}]*\})`)
	flowArrowPattern = regexp.MustCompile(`^(?:` + flowArrow + `)$`)
	flowDangling     = regexp.MustCompile(`^(?:` + flowArrow + `)|(?:` + flowArrow + `)$`)

	stateEdgePattern = regexp.MustCompile(`(\[\*\]|[A-Za-z0-9_]+)\s*-->\s*(\[\*\]|[A-Za-z0-9_]+)(?:\s*:\s*(.+))?`)
	stateDefPattern  = regexp.MustCompile(`state\s+"([^"]+)"\s+as\s+([A-Za-z0-9_]+)`)
	stateDangling    = regexp.MustCompile(`^-->|-->$`)

	participantPattern = regexp.MustCompile(`^(?:participant|actor)\s+([A-Za-z0-9_]+)(?:\s+as\s+(.+))?`)
	messagePattern     = regexp.MustCompile(`^([A-Za-z0-9_]+)\s*(-->>|->>|-->|--x|-x|->)[+-]?\s*([A-Za-z0-9_]+)\s*(?::\s*(.*))?`)
	messageDangling    = regexp.MustCompile(`^(?:-->>|->>|-->|--x|-x|->)|(?:-->>|->>|-->|--x|-x|->)$`)
)

// sourceLine is a trimmed, non-comment input line and its 1-based number.
type sourceLine struct {
	no   int
	text string
}

// MermaidImporter imports Mermaid flowcharts, state diagrams and sequence diagrams.
type MermaidImporter struct{}

// NewMermaidImporter creates a new Mermaid importer
func NewMermaidImporter() *MermaidImporter {
	return &MermaidImporter{}
}

// CanImport checks if the first meaningful line names a Mermaid diagram.
func (m *MermaidImporter) CanImport(content string) bool {
	lines := splitLines(content)
	if len(lines) == 0 {
		return false
	}
	_, err := detectType(lines[0].text)
	return err == nil
}

// Import converts Mermaid content to a diagram.
func (m *MermaidImporter) Import(content string) (*diagram.Diagram, error) {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil, ErrEmptyDiagram
	}

	t, err := detectType(lines[0].text)
	if err != nil {
		return nil, err
	}

	switch t {
	case diagram.TypeState:
		return parseStateDiagram(lines)
	case diagram.TypeSequence:
		return parseSequenceDiagram(lines)
	default:
		return parseFlowchart(lines)
	}
}

// GetFormatName returns the format name
func (m *MermaidImporter) GetFormatName() string {
	return "mermaid"
}

// GetFileExtensions returns common file extensions
func (m *MermaidImporter) GetFileExtensions() []string {
	return []string{".mmd", ".mermaid"}
}

// splitLines trims every line and drops blanks and %% comments.
func splitLines(content string) []sourceLine {
	var lines []sourceLine
	for i, raw := range strings.Split(content, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "%%") {
			continue
		}
		lines = append(lines, sourceLine{no: i + 1, text: text})
	}
	return lines
}

// detectType reads the diagram keyword from the header line.
func detectType(header string) (diagram.Type, error) {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "graph") || strings.Contains(h, "flowchart"):
		return diagram.TypeFlowchart, nil
	case strings.Contains(h, "statediagram"):
		return diagram.TypeState, nil
	case strings.Contains(h, "sequencediagram"):
		return diagram.TypeSequence, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, header)
}

// IsFlowArrow reports whether s is a flowchart link arrow the importer reads.
func IsFlowArrow(s string) bool {
	return flowArrowPattern.MatchString(s)
}

// skipLine records a line the parser has no rule for. Such lines are
// ignored so the rest of the diagram still renders.
func skipLine(line sourceLine) {
	logging.Logger.WithField("line", line.no).WithField("text", line.text).Debug("skipping unrecognised mermaid line")
}

func parseFlowchart(lines []sourceLine) (*diagram.Diagram, error) {
	dir := diagram.DirectionTD
	if m := flowDirectionPattern.FindStringSubmatch(lines[0].text); m != nil {
		dir = diagram.ParseDirection(m[1])
	}
	d := diagram.NewGraph(diagram.TypeFlowchart, dir)

	for _, line := range lines[1:] {
		matches := flowEdgePattern.FindAllStringSubmatch(line.text, -1)
		if len(matches) == 0 {
			if flowDangling.MatchString(line.text) {
				return nil, &LineError{Line: line.no, Text: line.text, Err: ErrDanglingArrow}
			}
			if m := flowNodePattern.FindStringSubmatch(line.text); m != nil {
				d.Nodes.Add(flowNode(m[1], m[2]))
			} else {
				skipLine(line)
			}
			continue
		}

		for _, m := range matches {
			d.Nodes.Add(flowNode(m[1], m[2]))
			d.Nodes.Add(flowNode(m[5], m[6]))
			d.Edges = append(d.Edges, diagram.Edge{
				From:  m[1],
				To:    m[5],
				Type:  m[3],
				Label: strings.TrimSpace(m[4]),
			})
		}
	}

	if d.Nodes.Len() == 0 {
		return nil, fmt.Errorf("%w in flowchart", ErrNoNodes)
	}
	return d, nil
}

// flowNode builds a node from its id and optional bracketed label.
// The bracket style picks the shape.
func flowNode(id, bracketed string) *diagram.Node {
	if len(bracketed) < 2 {
		return diagram.NewNode(id, id, diagram.ShapeRect)
	}

	label := bracketed[1 : len(bracketed)-1]
	switch bracketed[0] {
	case '(':
		return diagram.NewNode(id, label, diagram.ShapeRound)
	case '{':
		return diagram.NewNode(id, label, diagram.ShapeRhombus)
	default:
		return diagram.NewNode(id, label, diagram.ShapeRect)
	}
}

func parseStateDiagram(lines []sourceLine) (*diagram.Diagram, error) {
	d := diagram.NewGraph(diagram.TypeState, diagram.DirectionTD)

	for _, line := range lines[1:] {
		if m := stateEdgePattern.FindStringSubmatch(line.text); m != nil {
			d.Nodes.Add(diagram.NewStateNode(m[1], ""))
			d.Nodes.Add(diagram.NewStateNode(m[2], ""))
			d.Edges = append(d.Edges, diagram.Edge{
				From:  m[1],
				To:    m[2],
				Type:  "-->",
				Label: strings.TrimSpace(m[3]),
			})
			continue
		}
		if m := stateDefPattern.FindStringSubmatch(line.text); m != nil {
			d.Nodes.Add(diagram.NewStateNode(m[2], m[1]))
			continue
		}
		if stateDangling.MatchString(line.text) {
			return nil, &LineError{Line: line.no, Text: line.text, Err: ErrDanglingArrow}
		}
		skipLine(line)
	}

	if d.Nodes.Len() == 0 {
		return nil, fmt.Errorf("%w in state diagram", ErrNoNodes)
	}
	return d, nil
}

func parseSequenceDiagram(lines []sourceLine) (*diagram.Diagram, error) {
	d := diagram.NewSequence()

	for _, line := range lines[1:] {
		if m := participantPattern.FindStringSubmatch(line.text); m != nil {
			d.AddParticipant(diagram.NewParticipant(m[1], strings.TrimSpace(m[2])))
			continue
		}

		m := messagePattern.FindStringSubmatch(line.text)
		if m == nil {
			if messageDangling.MatchString(line.text) {
				return nil, &LineError{Line: line.no, Text: line.text, Err: ErrDanglingArrow}
			}
			skipLine(line)
			continue
		}

		d.AddParticipant(diagram.NewParticipant(m[1], ""))
		d.AddParticipant(diagram.NewParticipant(m[3], ""))
		d.Messages = append(d.Messages, diagram.Message{
			From:     m[1],
			To:       m[3],
			Type:     m[2],
			Label:    strings.TrimSpace(m[4]),
			Sequence: len(d.Messages),
		})
	}

	if len(d.Participants) == 0 {
		return nil, fmt.Errorf("%w in sequence diagram", ErrNoNodes)
	}
	return d, nil
}
