package pathfind

import (
	"testing"

	"minipolis/grid"
)

func roadGrid(size int, pts ...grid.Point) *grid.Grid {
	g := grid.New(size)
	for _, p := range pts {
		g.SetTile(p.X, p.Y, grid.Building{Type: grid.Road})
	}
	return g
}

func railLine(g *grid.Grid, y, x0, x1 int) {
	for x := x0; x <= x1; x++ {
		g.SetTile(x, y, grid.Building{Type: grid.Rail})
	}
}

// TestFindValidPath verifies consecutive elements are grid-adjacent and all
// on the requested surface.
func TestFindValidPath(t *testing.T) {
	g := grid.New(8)
	// L-shaped road from (1,1) east to (5,1), then south to (5,5).
	for x := 1; x <= 5; x++ {
		g.SetTile(x, 1, grid.Building{Type: grid.Road})
	}
	for y := 1; y <= 5; y++ {
		g.SetTile(5, y, grid.Building{Type: grid.Road})
	}

	path := Find(g, grid.Point{X: 1, Y: 1}, grid.Point{X: 5, Y: 5}, grid.RoadSurface)
	if path == nil {
		t.Fatal("expected a path along the L road")
	}
	if path[0] != (grid.Point{X: 1, Y: 1}) || path[len(path)-1] != (grid.Point{X: 5, Y: 5}) {
		t.Fatalf("path endpoints = %v .. %v", path[0], path[len(path)-1])
	}
	if len(path) != 9 {
		t.Errorf("path length = %d, want 9 (shortest along the L)", len(path))
	}
	for i, p := range path {
		if !g.Passable(p.X, p.Y, grid.RoadSurface) {
			t.Errorf("path[%d] = %v is not on road", i, p)
		}
		if i > 0 {
			prev := path[i-1]
			manhattan := absInt(p.X-prev.X) + absInt(p.Y-prev.Y)
			if manhattan != 1 {
				t.Errorf("path[%d] = %v is not adjacent to %v", i, p, prev)
			}
		}
	}
}

// TestFindDisconnected verifies nil for endpoints on separate components.
func TestFindDisconnected(t *testing.T) {
	g := grid.New(8)
	railLine(g, 2, 0, 2)
	railLine(g, 2, 4, 7) // one-tile gap at x=3

	if path := Find(g, grid.Point{X: 1, Y: 2}, grid.Point{X: 5, Y: 2}, grid.RailSurface); path != nil {
		t.Errorf("expected nil across the gap, got %v", path)
	}
}

// TestFindStartEqualsGoal verifies the single-element path.
func TestFindStartEqualsGoal(t *testing.T) {
	g := roadGrid(4, grid.Point{X: 2, Y: 2})
	path := Find(g, grid.Point{X: 2, Y: 2}, grid.Point{X: 2, Y: 2}, grid.RoadSurface)
	if len(path) != 1 || path[0] != (grid.Point{X: 2, Y: 2}) {
		t.Errorf("path = %v, want single element {2 2}", path)
	}
}

// TestFindOffSurfaceEndpoints verifies nil when an endpoint misses the
// surface, and that rail paths never cross road tiles.
func TestFindOffSurfaceEndpoints(t *testing.T) {
	g := roadGrid(4, grid.Point{X: 1, Y: 1}, grid.Point{X: 2, Y: 1})
	if Find(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 1}, grid.RoadSurface) != nil {
		t.Error("expected nil for off-road start")
	}
	if Find(g, grid.Point{X: 1, Y: 1}, grid.Point{X: 2, Y: 1}, grid.RailSurface) != nil {
		t.Error("expected nil for rail search over road tiles")
	}
}

// TestFindDeterministic verifies repeated calls produce the identical path.
func TestFindDeterministic(t *testing.T) {
	g := grid.New(10)
	// A block with two equal-length routes around it.
	for x := 1; x <= 5; x++ {
		g.SetTile(x, 1, grid.Building{Type: grid.Road})
		g.SetTile(x, 5, grid.Building{Type: grid.Road})
	}
	for y := 1; y <= 5; y++ {
		g.SetTile(1, y, grid.Building{Type: grid.Road})
		g.SetTile(5, y, grid.Building{Type: grid.Road})
	}

	a := Find(g, grid.Point{X: 1, Y: 1}, grid.Point{X: 5, Y: 5}, grid.RoadSurface)
	b := Find(g, grid.Point{X: 1, Y: 1}, grid.Point{X: 5, Y: 5}, grid.RoadSurface)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("path lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("paths diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestFindEmptyGrid verifies a zero-size grid yields nil.
func TestFindEmptyGrid(t *testing.T) {
	g := grid.New(0)
	if Find(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 0}, grid.RoadSurface) != nil {
		t.Error("expected nil on empty grid")
	}
}

// TestPathConsumption verifies index-by-index traversal and direction.
func TestPathConsumption(t *testing.T) {
	p := NewPath([]grid.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}})
	if p.AtEnd() {
		t.Fatal("fresh path should not be at end")
	}
	if d := p.Direction(); d != grid.East {
		t.Errorf("first leg direction = %v, want east", d)
	}
	p.Advance()
	if d := p.Direction(); d != grid.South {
		t.Errorf("second leg direction = %v, want south", d)
	}
	p.Advance()
	if !p.AtEnd() {
		t.Error("path should be at end after consuming both legs")
	}
	p.Advance() // no-op
	if p.Current() != (grid.Point{X: 2, Y: 2}) {
		t.Errorf("Current = %v, want {2 2}", p.Current())
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
