package layout

import "asciimaid/diagram"

// Ranking is the result of level assignment.
type Ranking struct {
	// Order lists node ids in the order their level was fixed: BFS visit
	// order first, then unreached nodes in insertion order.
	Order []string
	// Level maps each node id to its level.
	Level map[string]int
	// Roots are the ids the search started from.
	Roots []string
}

// Depth returns the number of distinct levels.
func (r *Ranking) Depth() int {
	depth := 0
	for _, l := range r.Level {
		depth = max(depth, l+1)
	}
	return depth
}

// Groups returns the nodes of each level, index = level, preserving Order.
func (r *Ranking) Groups(nodes *diagram.NodeMap) [][]*diagram.Node {
	groups := make([][]*diagram.Node, r.Depth())
	for _, id := range r.Order {
		n, ok := nodes.Get(id)
		if !ok {
			continue
		}
		l := r.Level[id]
		groups[l] = append(groups[l], n)
	}
	return groups
}

type queued struct {
	id    string
	level int
}

// Rank assigns levels with a multi-source breadth-first search.
//
// Roots are the nodes without an incoming edge, in insertion order. When
// every node has one (pure cycles included) the first inserted node is the
// only root. A node's level is fixed the first time it is dequeued, so a
// node reachable from several roots takes the level of whichever frontier
// reaches it first in queue order; this is not a shortest-path guarantee.
// Nodes never reached are placed on level 0.
func Rank(nodes *diagram.NodeMap, edges []diagram.Edge) *Ranking {
	ids := nodes.IDs()
	ranking := &Ranking{
		Order: make([]string, 0, len(ids)),
		Level: make(map[string]int, len(ids)),
	}
	if len(ids) == 0 {
		return ranking
	}

	hasIncoming := make(map[string]bool)
	outgoing := make(map[string][]string)
	for _, e := range edges {
		hasIncoming[e.To] = true
		outgoing[e.From] = append(outgoing[e.From], e.To)
	}

	for _, id := range ids {
		if !hasIncoming[id] {
			ranking.Roots = append(ranking.Roots, id)
		}
	}
	if len(ranking.Roots) == 0 {
		ranking.Roots = []string{ids[0]}
	}

	queue := make([]queued, 0, len(ids))
	for _, id := range ranking.Roots {
		queue = append(queue, queued{id: id, level: 0})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if _, seen := ranking.Level[cur.id]; seen {
			continue
		}
		ranking.Level[cur.id] = cur.level
		ranking.Order = append(ranking.Order, cur.id)

		for _, to := range outgoing[cur.id] {
			if _, seen := ranking.Level[to]; seen || !nodes.Has(to) {
				continue
			}
			queue = append(queue, queued{id: to, level: cur.level + 1})
		}
	}

	// Orphans
	for _, id := range ids {
		if _, ok := ranking.Level[id]; !ok {
			ranking.Level[id] = 0
			ranking.Order = append(ranking.Order, id)
		}
	}

	return ranking
}
