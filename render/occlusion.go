package render

import "minipolis/grid"

// Occluded reports whether a ground agent on (tileX, tileY) is hidden this
// frame by an adjacent taller building. The test compares the agent's depth
// key against its neighbors: a non-low occupied neighbor with strictly
// greater depth draws after the agent and covers it. This is a per-frame
// approximation; there is no persistent depth-sorted scene graph.
func Occluded(g *grid.Grid, tileX, tileY int) bool {
	depth := Depth(tileX, tileY)
	neighbors := [4][2]int{
		{tileX + 1, tileY},
		{tileX, tileY + 1},
		{tileX - 1, tileY},
		{tileX, tileY - 1},
	}
	for _, n := range neighbors {
		if Depth(n[0], n[1]) <= depth {
			continue
		}
		if !g.InBounds(n[0], n[1]) {
			continue
		}
		if !g.Tile(n[0], n[1]).Type.IsLow() {
			return true
		}
	}
	return false
}
