package layout

import (
	"asciimaid/diagram"
	"fmt"
	"testing"
)

// newGraph builds a flowchart from node ids and "from->to" edge pairs.
func newGraph(dir diagram.Direction, ids []string, edges [][2]string) *diagram.Diagram {
	d := diagram.NewGraph(diagram.TypeFlowchart, dir)
	for _, id := range ids {
		d.Nodes.Add(diagram.NewNode(id, id, diagram.ShapeRect))
	}
	for _, e := range edges {
		d.Edges = append(d.Edges, diagram.Edge{From: e[0], To: e[1], Type: "-->"})
	}
	return d
}

// GenerateLinearChain creates a chain N0 -> N1 -> ... -> N(length-1).
func GenerateLinearChain(length int) ([]string, [][2]string) {
	ids := make([]string, length)
	var edges [][2]string
	for i := range ids {
		ids[i] = fmt.Sprintf("N%d", i)
		if i > 0 {
			edges = append(edges, [2]string{ids[i-1], ids[i]})
		}
	}
	return ids, edges
}

// GenerateCycle creates a ring N0 -> N1 -> ... -> N0.
func GenerateCycle(size int) ([]string, [][2]string) {
	ids, edges := GenerateLinearChain(size)
	if size > 0 {
		edges = append(edges, [2]string{ids[size-1], ids[0]})
	}
	return ids, edges
}

// GenerateTree creates a complete tree with the given depth and fan-out.
func GenerateTree(depth, fanout int) ([]string, [][2]string) {
	ids := []string{"T"}
	var edges [][2]string
	frontier := []string{"T"}
	for d := 1; d < depth; d++ {
		var next []string
		for _, parent := range frontier {
			for c := 0; c < fanout; c++ {
				id := fmt.Sprintf("%s.%d", parent, c)
				ids = append(ids, id)
				edges = append(edges, [2]string{parent, id})
				next = append(next, id)
			}
		}
		frontier = next
	}
	return ids, edges
}

// ValidateNoOverlaps ensures no two nodes occupy the same space.
func ValidateNoOverlaps(t *testing.T, nodes []*diagram.Node) {
	t.Helper()
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			if a.X < b.X+b.Width && b.X < a.X+a.Width &&
				a.Y < b.Y+b.Height && b.Y < a.Y+a.Height {
				t.Errorf("Nodes %s and %s overlap: (%d,%d %dx%d) and (%d,%d %dx%d)",
					a.ID, b.ID, a.X, a.Y, a.Width, a.Height, b.X, b.Y, b.Width, b.Height)
			}
		}
	}
}

// ValidateNonNegative ensures all nodes were placed inside the first quadrant.
func ValidateNonNegative(t *testing.T, nodes []*diagram.Node) {
	t.Helper()
	for _, n := range nodes {
		if n.X < 0 || n.Y < 0 {
			t.Errorf("Node %s has negative position: (%d, %d)", n.ID, n.X, n.Y)
		}
	}
}
