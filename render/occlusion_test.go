package render

import (
	"testing"

	"minipolis/grid"
)

// TestOccludedByTallerNeighbor verifies an agent is hidden when a building
// with strictly greater depth sits next to it.
func TestOccludedByTallerNeighbor(t *testing.T) {
	g := grid.New(5)
	g.SetTile(2, 2, grid.Building{Type: grid.Road})
	g.SetTile(3, 2, grid.Building{Type: grid.Commercial})

	if !Occluded(g, 2, 2) {
		t.Error("agent at (2,2) should be occluded by the building at (3,2)")
	}
}

// TestNotOccludedByLowNeighbor verifies low tiles never hide agents.
func TestNotOccludedByLowNeighbor(t *testing.T) {
	g := grid.New(5)
	g.SetTile(2, 2, grid.Building{Type: grid.Road})
	g.SetTile(3, 2, grid.Building{Type: grid.Road})
	g.SetTile(2, 3, grid.Building{Type: grid.Park})

	if Occluded(g, 2, 2) {
		t.Error("road and park neighbors should not occlude")
	}
}

// TestNotOccludedByShallowerBuilding verifies buildings behind the agent
// (strictly smaller depth) never hide it.
func TestNotOccludedByShallowerBuilding(t *testing.T) {
	g := grid.New(5)
	g.SetTile(2, 2, grid.Building{Type: grid.Road})
	g.SetTile(1, 2, grid.Building{Type: grid.Industrial})
	g.SetTile(2, 1, grid.Building{Type: grid.Residential})

	if Occluded(g, 2, 2) {
		t.Error("buildings with smaller depth draw first and cannot occlude")
	}
}

// TestDepthKey verifies the isometric depth invariant.
func TestDepthKey(t *testing.T) {
	if Depth(3, 4) != 7 {
		t.Errorf("Depth(3,4) = %d, want 7", Depth(3, 4))
	}
	if Depth(4, 4) <= Depth(3, 4) {
		t.Error("south-east neighbors must have strictly greater depth")
	}
}

// TestTileToWorld verifies the 2:1 diamond projection.
func TestTileToWorld(t *testing.T) {
	wx, wy := TileToWorld(0, 0)
	if wx != 0 || wy != 0 {
		t.Errorf("origin projects to (%f, %f), want (0, 0)", wx, wy)
	}
	wx, wy = TileToWorld(1, 0)
	if wx != TileHalfW || wy != TileHalfH {
		t.Errorf("(1,0) projects to (%f, %f), want (%f, %f)", wx, wy, TileHalfW, TileHalfH)
	}
	wx, wy = TileToWorld(0, 1)
	if wx != -TileHalfW || wy != TileHalfH {
		t.Errorf("(0,1) projects to (%f, %f), want (%f, %f)", wx, wy, -TileHalfW, TileHalfH)
	}
}
