package sim

import (
	"testing"

	"minipolis/grid"
	"minipolis/pathfind"
)

func pathfindAcross(g *grid.Grid, x0, y0, x1, y1 int) []grid.Point {
	return pathfind.Find(g, grid.Point{X: x0, Y: y0}, grid.Point{X: x1, Y: y1}, grid.RailSurface)
}

func mustPath(t *testing.T, g *grid.Grid, from, to grid.Point) pathfind.Path {
	t.Helper()
	points := pathfind.Find(g, from, to, grid.RailSurface)
	if points == nil {
		t.Fatalf("no rail path from %v to %v", from, to)
	}
	return pathfind.NewPath(points)
}
