package render

import (
	"asciimaid/canvas"
	"asciimaid/diagram"
	"errors"
	"strings"
	"testing"
)

func newFlowchart(dir diagram.Direction, ids []string, edges ...diagram.Edge) *diagram.Diagram {
	d := diagram.NewGraph(diagram.TypeFlowchart, dir)
	for _, id := range ids {
		d.Nodes.Add(diagram.NewNode(id, id, diagram.ShapeRect))
	}
	d.Edges = edges
	return d
}

func edge(from, to string) diagram.Edge {
	return diagram.Edge{From: from, To: to, Type: "-->"}
}

func paintGraph(d *diagram.Diagram) *canvas.Canvas {
	r := NewGraphRenderer(DefaultOptions())
	r.layout.Layout(d)
	return r.Paint(d)
}

func paintSequence(d *diagram.Diagram) *canvas.Canvas {
	r := NewSequenceRenderer(DefaultOptions())
	r.layout.Layout(d)
	return r.Paint(d)
}

// expectCells checks a list of (x, y, glyph) triples.
func expectCells(t *testing.T, c *canvas.Canvas, cells []struct {
	x, y int
	r    rune
}) {
	t.Helper()
	for _, cell := range cells {
		if got := c.Get(cell.x, cell.y); got != cell.r {
			t.Errorf("cell (%d,%d) = %q, want %q", cell.x, cell.y, got, cell.r)
		}
	}
}

func TestShapeCorners(t *testing.T) {
	tests := []struct {
		shape          diagram.Shape
		tl, tr, bl, br rune
	}{
		{diagram.ShapeRect, '+', '+', '+', '+'},
		{diagram.ShapeRound, '(', ')', '(', ')'},
		{diagram.ShapeRoundedRect, '/', '\\', '\\', '/'},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			c := canvas.New(20, 6)
			n := &diagram.Node{ID: "n", Label: "Box", Shape: tt.shape, X: 2, Y: 1, Width: 10, Height: 3}
			drawNode(c, n)

			expectCells(t, c, []struct {
				x, y int
				r    rune
			}{
				{2, 1, tt.tl}, {11, 1, tt.tr}, {2, 3, tt.bl}, {11, 3, tt.br},
				{3, 1, '-'}, {10, 3, '-'}, {2, 2, '|'}, {11, 2, '|'},
			})
			if got := c.Lines()[2][2:12]; got != "|  Box   |" {
				t.Errorf("label row = %q", got)
			}
		})
	}
}

func TestShapeRhombus(t *testing.T) {
	c := canvas.New(20, 6)
	drawNode(c, &diagram.Node{ID: "d", Label: "ok", Shape: diagram.ShapeRhombus, X: 2, Y: 1, Width: 9, Height: 3})

	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{6, 1, '/'}, {6, 3, '\\'}, {2, 2, '<'}, {10, 2, '>'},
		{2, 1, ' '}, {10, 3, ' '},
	})
	if !strings.Contains(c.Lines()[2], "ok") {
		t.Errorf("rhombus label missing: %q", c.Lines()[2])
	}
}

func TestShapeUnknownFallsBackToRect(t *testing.T) {
	c := canvas.New(20, 6)
	drawNode(c, &diagram.Node{ID: "n", Shape: diagram.Shape(42), X: 0, Y: 0, Width: 8, Height: 3})
	if c.Get(0, 0) != '+' || c.Get(7, 2) != '+' {
		t.Errorf("unknown shape not drawn as rect:\n%s", c.String())
	}
}

func TestLabelClippedInsideBox(t *testing.T) {
	c := canvas.New(20, 5)
	drawNode(c, &diagram.Node{ID: "n", Label: "ABCDEFGHIJ", Shape: diagram.ShapeRect, X: 0, Y: 0, Width: 8, Height: 3})

	if got := c.Lines()[1][:8]; got != "| ABCD |" {
		t.Errorf("clipped label row = %q, want %q", got, "| ABCD |")
	}
}

func TestPseudoStateHasNoLabel(t *testing.T) {
	c := canvas.New(10, 5)
	n := diagram.NewStateNode(diagram.PseudoStateID, "")
	n.X, n.Y = 1, 1
	drawNode(c, n)

	want := []string{
		"          ",
		"  /       ",
		" < >      ",
		"  \\       ",
		"          ",
	}
	for i, line := range c.Lines() {
		if line != want[i] {
			t.Errorf("row %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestRenderGraph_TwoNodesTD(t *testing.T) {
	d := newFlowchart(diagram.DirectionTD, []string{"A", "B"}, edge("A", "B"))
	c := paintGraph(d)

	lines := c.Lines()
	if got := lines[2][46:54]; got != "+------+" {
		t.Errorf("A top = %q", got)
	}
	if got := lines[3][46:54]; got != "|  A   |" {
		t.Errorf("A label row = %q", got)
	}
	if got := lines[11][46:54]; got != "|  B   |" {
		t.Errorf("B label row = %q", got)
	}

	for y := 5; y <= 9; y++ {
		if c.Get(50, y) != '|' {
			t.Errorf("connector row %d = %q, want '|'", y, c.Get(50, y))
		}
	}
	if c.Get(50, 10) != 'v' {
		t.Errorf("arrowhead = %q, want 'v' on B's top border", c.Get(50, 10))
	}
	if c.Get(50, 4) != '-' {
		t.Errorf("A's bottom border was modified: %q", c.Get(50, 4))
	}
}

func TestRenderGraph_Cycle(t *testing.T) {
	d := newFlowchart(diagram.DirectionTD, []string{"A", "B"}, edge("A", "B"), edge("B", "A"))
	c := paintGraph(d)

	if c.Get(50, 10) != 'v' {
		t.Errorf("downward arrow = %q", c.Get(50, 10))
	}
	if c.Get(50, 4) != '^' {
		t.Errorf("upward arrow = %q", c.Get(50, 4))
	}
	if !strings.Contains(c.String(), "A") || !strings.Contains(c.String(), "B") {
		t.Error("both boxes should be drawn")
	}
}

func TestRenderGraph_BendsBecomeCorners(t *testing.T) {
	d := newFlowchart(diagram.DirectionTD, []string{"A", "B", "C"}, edge("A", "B"), edge("A", "C"))
	c := paintGraph(d)

	// A centre column 50, B centre 41, C centre 59, turn row 7.
	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{50, 5, '|'}, {50, 7, '+'}, {41, 7, '+'}, {59, 7, '+'},
		{45, 7, '-'}, {55, 7, '-'},
		{41, 10, 'v'}, {59, 10, 'v'},
	})
}

func TestRenderGraph_SameRowTurnsBelow(t *testing.T) {
	d := newFlowchart(diagram.DirectionTD, []string{"A", "B", "C"},
		edge("A", "B"), edge("A", "C"), edge("B", "C"))
	c := paintGraph(d)

	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{41, 13, '+'}, {50, 13, '-'}, {59, 13, '+'}, {59, 12, '^'},
	})
	if got := c.Lines()[11][37:45]; got != "|  B   |" {
		t.Errorf("B label row crossed by edge: %q", got)
	}
}

func TestRenderGraph_EdgeLabel(t *testing.T) {
	e := edge("A", "B")
	e.Label = "yes"
	c := paintGraph(newFlowchart(diagram.DirectionTD, []string{"A", "B"}, e))

	if got := c.Lines()[7][52:55]; got != "yes" {
		t.Errorf("label = %q, want yes beside the connector", got)
	}
}

func TestRenderGraph_MissingNodeSkipsEdge(t *testing.T) {
	want := paintGraph(newFlowchart(diagram.DirectionTD, []string{"A", "B"}, edge("A", "B"))).String()
	got := paintGraph(newFlowchart(diagram.DirectionTD, []string{"A", "B"},
		edge("A", "B"), edge("A", "Ghost"), edge("Ghost", "B"))).String()

	if got != want {
		t.Errorf("dangling edges changed the output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderGraph_TwoNodesLR(t *testing.T) {
	e := edge("A", "B")
	e.Label = "go"
	d := newFlowchart(diagram.DirectionLR, []string{"A", "B"}, e)
	c := paintGraph(d)

	// A spans columns 5..12, B starts at 35, both centred on row 14.
	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{12, 14, '|'}, {13, 14, '-'}, {23, 14, '-'}, {32, 14, '-'},
		{33, 14, '>'}, {34, 14, '>'}, {35, 14, '|'},
		{24, 13, 'g'}, {25, 13, 'o'},
	})
}

func TestRenderGraph_LRBackEdge(t *testing.T) {
	d := newFlowchart(diagram.DirectionLR, []string{"A", "B"}, edge("A", "B"), edge("B", "A"))
	c := paintGraph(d)

	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{13, 14, '<'}, {14, 14, '<'}, {20, 14, '-'}, {33, 14, '>'}, {34, 14, '>'},
	})
}

func TestRenderGraph_LRBendsAndSameColumn(t *testing.T) {
	d := newFlowchart(diagram.DirectionLR, []string{"A", "B", "C"},
		edge("A", "B"), edge("A", "C"), edge("B", "C"))
	c := paintGraph(d)

	// A centred on row 14; B and C stacked in column 35 on rows 9 and 20.
	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{23, 14, '+'}, {23, 9, '+'}, {23, 20, '+'}, {23, 12, '|'},
		{33, 9, '>'}, {34, 9, '>'}, {33, 20, '>'}, {34, 20, '>'},
		{44, 9, '+'}, {44, 15, '|'}, {44, 20, '+'}, {43, 20, '<'},
	})
}

func TestRenderGraph_Idempotent(t *testing.T) {
	d := newFlowchart(diagram.DirectionTD, []string{"A", "B", "C", "D"},
		edge("A", "B"), edge("A", "C"), edge("B", "D"), edge("C", "D"), edge("D", "A"))
	r := NewGraphRenderer(DefaultOptions())
	r.layout.Layout(d)

	first := r.Paint(d).String()
	second := r.Paint(d).String()
	if first != second {
		t.Errorf("repainting changed the output:\n%s\n---\n%s", first, second)
	}
}

func TestRenderGraph_CanvasSize(t *testing.T) {
	tests := []struct {
		name          string
		d             *diagram.Diagram
		width, height int
	}{
		{"empty", newFlowchart(diagram.DirectionTD, nil), 80, 20},
		{"single node", newFlowchart(diagram.DirectionTD, []string{"A"}), 80, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := paintGraph(tt.d).Size()
			if w != tt.width || h != tt.height {
				t.Errorf("canvas %dx%d, want %dx%d", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestRenderGraph_ChainGrowsCanvas(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	d := newFlowchart(diagram.DirectionTD, ids, edge("A", "B"), edge("B", "C"), edge("C", "D"))
	out, err := RenderGraph(d, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderGraph: %v", err)
	}

	// D sits at row 26, so the canvas is 26 + 3 + 5 rows tall.
	if got := len(strings.Split(out, "\n")); got != 34 {
		t.Errorf("got %d rows, want 34", got)
	}
	for _, id := range ids {
		if !strings.Contains(out, id) {
			t.Errorf("output missing %s", id)
		}
	}
}

func TestRenderGraph_StateDiagram(t *testing.T) {
	d := diagram.NewGraph(diagram.TypeState, diagram.DirectionTD)
	d.Nodes.Add(diagram.NewStateNode(diagram.PseudoStateID, ""))
	d.Nodes.Add(diagram.NewStateNode("Idle", ""))
	d.Edges = []diagram.Edge{edge(diagram.PseudoStateID, "Idle")}

	c := paintGraph(d)
	start, _ := d.Nodes.Get(diagram.PseudoStateID)
	idle, _ := d.Nodes.Get("Idle")

	cx, cy := start.Center()
	if c.Get(start.X, cy) != '<' || c.Get(start.Right(), cy) != '>' || c.Get(cx, start.Y) != '/' {
		t.Errorf("pseudo state not drawn as rhombus:\n%s", c.String())
	}
	if c.Get(idle.X, idle.Y) != '/' || c.Get(idle.Right(), idle.Y) != '\\' {
		t.Errorf("state not drawn with rounded corners:\n%s", c.String())
	}
	if !strings.Contains(c.String(), "Idle") {
		t.Error("state label missing")
	}
}

func newSequence(ids []string, messages ...diagram.Message) *diagram.Diagram {
	d := diagram.NewSequence()
	for _, id := range ids {
		d.AddParticipant(diagram.NewParticipant(id, ""))
	}
	for i := range messages {
		messages[i].Sequence = i
	}
	d.Messages = messages
	return d
}

func msg(from, to, typ, label string) diagram.Message {
	return diagram.Message{From: from, To: to, Type: typ, Label: label}
}

func TestRenderSequence_MessageOrder(t *testing.T) {
	d := newSequence([]string{"Alice", "Bob"},
		msg("Alice", "Bob", diagram.MessageSync, "hi"),
		msg("Bob", "Alice", diagram.MessageReply, "bye"))
	c := paintSequence(d)

	// Lifelines at columns 10 and 35; messages on rows 8 and 12.
	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{10, 8, '+'}, {20, 8, '-'}, {35, 8, '>'},
		{10, 12, '<'}, {20, 12, '-'}, {35, 12, '+'},
		{10, 5, '|'}, {35, 19, '|'}, {35, 20, ' '},
	})

	out := c.String()
	if strings.Index(out, "hi") > strings.Index(out, "bye") {
		t.Errorf("hi should appear above bye:\n%s", out)
	}
	if got := c.Lines()[7][21:23]; got != "hi" {
		t.Errorf("first label = %q", got)
	}
	if got := c.Lines()[3][5:15]; got != "| Alice  |" {
		t.Errorf("participant box = %q", got)
	}
}

func TestRenderSequence_CrossMessages(t *testing.T) {
	d := newSequence([]string{"Alice", "Bob"},
		msg("Alice", "Bob", diagram.MessageCross, ""),
		msg("Bob", "Alice", diagram.MessageCrossDash, ""))
	c := paintSequence(d)

	expectCells(t, c, []struct {
		x, y int
		r    rune
	}{
		{33, 8, '-'}, {34, 8, 'X'}, {35, 8, '|'},
		{12, 12, '-'}, {11, 12, 'X'}, {10, 12, '|'},
	})
}

func TestRenderSequence_SelfMessage(t *testing.T) {
	d := newSequence([]string{"Alice", "Bob"}, msg("Alice", "Alice", diagram.MessageSync, "think"))
	c := paintSequence(d)

	if c.Get(10, 8) != '>' {
		t.Errorf("self message arrow = %q", c.Get(10, 8))
	}
	if c.Get(11, 8) != ' ' {
		t.Errorf("self message should not draw a line, got %q", c.Get(11, 8))
	}
}

func TestRenderSequence_UnknownParticipantSkipped(t *testing.T) {
	want := paintSequence(newSequence([]string{"Alice", "Bob"},
		msg("Alice", "Bob", diagram.MessageSync, "hi"))).String()
	got := paintSequence(newSequence([]string{"Alice", "Bob"},
		msg("Alice", "Bob", diagram.MessageSync, "hi"),
		msg("Alice", "Ghost", diagram.MessageSync, "boo"))).Lines()

	// The skipped message still claims a row, so the canvas grows by
	// the message height; everything else must be identical.
	wantLines := strings.Split(want, "\n")
	for y := 0; y < 12; y++ {
		if got[y] != wantLines[y] {
			t.Errorf("row %d = %q, want %q", y, got[y], wantLines[y])
		}
	}
	if strings.Contains(strings.Join(got, "\n"), "boo") {
		t.Error("message to unknown participant was drawn")
	}
}

func TestRenderSequence_WideLabelKeepsRowWidth(t *testing.T) {
	// The label straddles both lifelines on row 7.
	d := newSequence([]string{"Alice", "Bob"},
		msg("Alice", "Bob", diagram.MessageSync, "日本語日本語日本語日本語日本語"))
	c := paintSequence(d)

	width, _ := c.Size()
	for y, line := range c.Lines() {
		if w := canvas.TextWidth(line); w != width {
			t.Errorf("row %d is %d cells wide, want %d: %q", y, w, width, line)
		}
	}
	if c.Get(10, 7) != '|' || c.Get(35, 7) != '|' {
		t.Errorf("lifelines overwritten:\n%s", c.String())
	}
}

func TestRenderSequence_CanvasSize(t *testing.T) {
	w, h := paintSequence(diagram.NewSequence()).Size()
	if w != 50 || h != 20 {
		t.Errorf("empty sequence canvas %dx%d, want 50x20", w, h)
	}

	d := newSequence([]string{"Alice", "Bob"},
		msg("Alice", "Bob", diagram.MessageSync, "1"),
		msg("Bob", "Alice", diagram.MessageSync, "2"),
		msg("Alice", "Bob", diagram.MessageSync, "3"),
		msg("Bob", "Alice", diagram.MessageSync, "4"))
	if _, h := paintSequence(d).Size(); h != 30 {
		t.Errorf("height = %d, want last message row 20 + 10", h)
	}
}

func TestRender_Dispatch(t *testing.T) {
	flow, err := Render(newFlowchart(diagram.DirectionTD, []string{"A"}), DefaultOptions())
	if err != nil || !strings.Contains(flow, "A") {
		t.Errorf("flowchart: %v\n%s", err, flow)
	}

	seq, err := Render(newSequence([]string{"Alice"}), DefaultOptions())
	if err != nil || !strings.Contains(seq, "Alice") {
		t.Errorf("sequence: %v\n%s", err, seq)
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(nil, DefaultOptions()); !errors.Is(err, ErrNilDiagram) {
		t.Errorf("nil diagram: got %v", err)
	}

	pie := &diagram.Diagram{Type: "pie"}
	if _, err := Render(pie, DefaultOptions()); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("unsupported type: got %v", err)
	}

	if _, err := RenderGraph(newSequence(nil), DefaultOptions()); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("graph renderer accepted a sequence diagram: %v", err)
	}
	if _, err := RenderSequence(newFlowchart(diagram.DirectionTD, nil), DefaultOptions()); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("sequence renderer accepted a flowchart: %v", err)
	}
}
