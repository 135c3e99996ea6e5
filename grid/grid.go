package grid

// Surface is the passability predicate distinguishing the road network from
// the rail network. Topology queries and the pathfinder are parameterized by
// it rather than hard-coding a building type.
type Surface struct {
	Name string
	Pass func(Building) bool
}

// RoadSurface passes road tiles only.
var RoadSurface = Surface{Name: "road", Pass: func(b Building) bool { return b.Type.IsRoad() }}

// RailSurface passes rail tiles only.
var RailSurface = Surface{Name: "rail", Pass: func(b Building) bool { return b.Type.IsRail() }}

// Grid is the N×N tile matrix. The player (via the edit tools) is the only
// writer; the simulation reads it and watches Version for cache invalidation.
type Grid struct {
	size    int
	tiles   []Building
	version int64
}

// New creates an empty size×size grid of unpowered grass.
func New(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		tiles: make([]Building, size*size),
	}
}

// Size returns the grid edge length N.
func (g *Grid) Size() int { return g.size }

// Version returns the monotonic edit counter.
func (g *Grid) Version() int64 { return g.version }

// InBounds reports whether (x, y) addresses a real tile.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// Tile returns the building at (x, y). Out-of-bounds coordinates return the
// zero building (unpowered grass), never an error, so callers can probe
// neighbors without bounds checks.
func (g *Grid) Tile(x, y int) Building {
	if !g.InBounds(x, y) {
		return Building{}
	}
	return g.tiles[y*g.size+x]
}

// SetTile replaces the building at (x, y) and bumps the version. Writes
// outside the grid are ignored.
func (g *Grid) SetTile(x, y int, b Building) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.size+x] = b
	g.version++
}

// Bump increments the version without editing a tile. Used when a
// collaborator mutates tile fields in place (power, population sweeps).
func (g *Grid) Bump() { g.version++ }

// Passable reports whether the tile at (x, y) satisfies the surface.
// Out-of-bounds tiles are never passable.
func (g *Grid) Passable(x, y int, s Surface) bool {
	return s.Pass(g.Tile(x, y))
}
