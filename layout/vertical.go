package layout

import "asciimaid/diagram"

// positionVertical lays levels out top to bottom. Each level is one row
// band; its nodes are spread left to right and centred on CanvasWidth.
func (g *GraphLayout) positionVertical(groups [][]*diagram.Node) {
	for level, group := range groups {
		if len(group) == 0 {
			continue
		}

		// Calculate total width needed for this level
		groupWidth := 0
		for i, node := range group {
			groupWidth += node.Width
			if i > 0 {
				groupWidth += g.opts.NodeSpacing
			}
		}

		x := g.centredStart(g.opts.CanvasWidth, groupWidth)
		y := level*g.opts.RankSpacing + g.opts.TopMargin

		for _, node := range group {
			node.X = x
			node.Y = y
			x += node.Width + g.opts.NodeSpacing
		}
	}
}
