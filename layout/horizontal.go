package layout

import "asciimaid/diagram"

// positionHorizontal lays levels out left to right. Each level is one
// column; its nodes are stacked top to bottom and centred on CanvasHeight.
//
// Columns advance by LRColumnWidth plus NodeSpacing, widened when a level
// holds a node wider than LRColumnWidth so neighbouring columns never overlap.
func (g *GraphLayout) positionHorizontal(groups [][]*diagram.Node) {
	x := g.opts.LRLeftMargin

	for _, group := range groups {
		columnWidth := g.opts.LRColumnWidth
		groupHeight := 0
		for i, node := range group {
			columnWidth = max(columnWidth, node.Width)
			groupHeight += node.Height
			if i > 0 {
				groupHeight += g.opts.RankSpacing
			}
		}

		y := g.centredStart(g.opts.CanvasHeight, groupHeight)
		for _, node := range group {
			node.X = x
			node.Y = y
			y += node.Height + g.opts.RankSpacing
		}

		x += columnWidth + g.opts.NodeSpacing
	}
}
