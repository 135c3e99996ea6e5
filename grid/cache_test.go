package grid

import "testing"

// TestCacheRecomputesOnVersionChange verifies the version-keyed memoization.
func TestCacheRecomputesOnVersionChange(t *testing.T) {
	g := New(4)
	computes := 0
	c := NewCache(func(g *Grid) int {
		computes++
		return CountTiles(g, func(b Building) bool { return b.Type.IsRoad() })
	})

	if got := c.Get(g); got != 0 {
		t.Errorf("initial count = %d, want 0", got)
	}
	c.Get(g)
	c.Get(g)
	if computes != 1 {
		t.Errorf("computes = %d after repeated gets, want 1", computes)
	}

	g.SetTile(1, 1, Building{Type: Road})
	if got := c.Get(g); got != 1 {
		t.Errorf("count after edit = %d, want 1", got)
	}
	if computes != 2 {
		t.Errorf("computes = %d after edit, want 2", computes)
	}
}

// TestPopulationCache verifies population totals track edits.
func TestPopulationCache(t *testing.T) {
	g := New(4)
	c := NewPopulationCache()
	g.SetTile(0, 0, Building{Type: Residential, Powered: true, Population: 12})
	g.SetTile(1, 0, Building{Type: Residential, Powered: true, Population: 7})
	if got := c.Get(g); got != 19 {
		t.Errorf("population = %d, want 19", got)
	}

	g.SetTile(1, 0, Building{Type: Grass})
	if got := c.Get(g); got != 12 {
		t.Errorf("population after bulldoze = %d, want 12", got)
	}
}

// TestTileListCache verifies coordinate collection and invalidation.
func TestTileListCache(t *testing.T) {
	g := New(4)
	c := NewTileListCache(func(b Building) bool { return b.Type == Residential })
	g.SetTile(2, 3, Building{Type: Residential})
	pts := c.Get(g)
	if len(pts) != 1 || pts[0] != (Point{2, 3}) {
		t.Fatalf("tile list = %v, want [{2 3}]", pts)
	}
}
