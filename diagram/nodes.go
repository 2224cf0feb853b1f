package diagram

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// NodeMap is an id-keyed node collection that remembers insertion order.
// Insertion order is observable: it drives root fallback and per-level
// ordering in the layout engine.
type NodeMap struct {
	order []string
	nodes map[string]*Node
}

// NewNodeMap creates an empty NodeMap.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[string]*Node)}
}

// Add inserts a node. If a node with the same id is already present the
// first definition wins and Add returns false.
func (m *NodeMap) Add(n *Node) bool {
	if m.nodes == nil {
		m.nodes = make(map[string]*Node)
	}
	if _, ok := m.nodes[n.ID]; ok {
		return false
	}
	m.nodes[n.ID] = n
	m.order = append(m.order, n.ID)
	return true
}

// Get returns the node with the given id.
func (m *NodeMap) Get(id string) (*Node, bool) {
	if m == nil {
		return nil, false
	}
	n, ok := m.nodes[id]
	return n, ok
}

// Has reports whether id is present.
func (m *NodeMap) Has(id string) bool {
	_, ok := m.Get(id)
	return ok
}

// Len returns the number of nodes.
func (m *NodeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// IDs returns node ids in insertion order.
func (m *NodeMap) IDs() []string {
	if m == nil {
		return nil
	}
	ids := make([]string, len(m.order))
	copy(ids, m.order)
	return ids
}

// Nodes returns the nodes in insertion order.
func (m *NodeMap) Nodes() []*Node {
	if m == nil {
		return nil
	}
	out := make([]*Node, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.nodes[id])
	}
	return out
}

// MarshalJSON encodes the map as an ordered array of nodes.
func (m *NodeMap) MarshalJSON() ([]byte, error) {
	nodes := m.Nodes()
	if nodes == nil {
		nodes = []*Node{}
	}
	return json.Marshal(nodes)
}

// UnmarshalJSON decodes an ordered array of nodes.
func (m *NodeMap) UnmarshalJSON(data []byte) error {
	var nodes []*Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return err
	}
	m.fill(nodes)
	return nil
}

// MarshalYAML encodes the map as an ordered sequence of nodes.
func (m *NodeMap) MarshalYAML() (interface{}, error) {
	return m.Nodes(), nil
}

// UnmarshalYAML decodes an ordered sequence of nodes.
func (m *NodeMap) UnmarshalYAML(value *yaml.Node) error {
	var nodes []*Node
	if err := value.Decode(&nodes); err != nil {
		return err
	}
	m.fill(nodes)
	return nil
}

func (m *NodeMap) fill(nodes []*Node) {
	m.order = nil
	m.nodes = make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		if n != nil {
			m.Add(n)
		}
	}
}
