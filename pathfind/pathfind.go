// Package pathfind provides breadth-first shortest-path search over the
// tile grid, parameterized by a surface predicate so the same search serves
// both the road and rail networks.
package pathfind

import "minipolis/grid"

// Find computes a shortest path from start to goal across tiles satisfying
// the surface. It returns nil when the endpoints are disconnected or either
// endpoint fails the predicate; callers treat that as a routine spawn
// failure, not an error. A start-equals-goal query returns a single-element
// path. Neighbor expansion follows the fixed N/E/S/W order and each cell is
// visited at most once, so results are deterministic for a grid snapshot and
// the search is bounded by O(N²).
func Find(g *grid.Grid, start, goal grid.Point, s grid.Surface) []grid.Point {
	size := g.Size()
	if size <= 0 {
		return nil
	}
	if !g.Passable(start.X, start.Y, s) || !g.Passable(goal.X, goal.Y, s) {
		return nil
	}
	if start == goal {
		return []grid.Point{start}
	}

	idx := func(p grid.Point) int { return p.Y*size + p.X }

	visited := make([]bool, size*size)
	cameFrom := make([]int32, size*size)
	for i := range cameFrom {
		cameFrom[i] = -1
	}

	queue := make([]grid.Point, 0, size)
	queue = append(queue, start)
	visited[idx(start)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range grid.Directions {
			next := cur.Step(d)
			if !g.Passable(next.X, next.Y, s) {
				continue
			}
			ni := idx(next)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			cameFrom[ni] = int32(idx(cur))

			if next == goal {
				return reconstruct(cameFrom, size, start, goal)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// reconstruct walks the parent links from goal back to start and reverses.
func reconstruct(cameFrom []int32, size int, start, goal grid.Point) []grid.Point {
	var rev []grid.Point
	cur := goal
	for cur != start {
		rev = append(rev, cur)
		pi := cameFrom[cur.Y*size+cur.X]
		if pi < 0 {
			return nil
		}
		cur = grid.Point{X: int(pi) % size, Y: int(pi) / size}
	}
	rev = append(rev, start)

	path := make([]grid.Point, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path
}
