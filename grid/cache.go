package grid

// Cache memoizes an expensive whole-grid scan, keyed by the grid version.
// The value is recomputed lazily on first access after an edit. This is the
// explicit form of the version-counter caching the simulation leans on for
// per-frame aggregate queries.
type Cache[T any] struct {
	compute func(*Grid) T
	version int64
	value   T
	primed  bool
}

// NewCache creates a cache around the given scan.
func NewCache[T any](compute func(*Grid) T) *Cache[T] {
	return &Cache[T]{compute: compute}
}

// Get returns the cached value, recomputing when the grid version moved.
func (c *Cache[T]) Get(g *Grid) T {
	if !c.primed || c.version != g.Version() {
		c.value = c.compute(g)
		c.version = g.Version()
		c.primed = true
	}
	return c.value
}

// CountTiles returns the number of tiles matching the predicate.
func CountTiles(g *Grid, pred func(Building) bool) int {
	n := 0
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if pred(g.Tile(x, y)) {
				n++
			}
		}
	}
	return n
}

// CollectTiles returns the coordinates of all tiles matching the predicate,
// in row-major order.
func CollectTiles(g *Grid, pred func(Building) bool) []Point {
	var pts []Point
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if pred(g.Tile(x, y)) {
				pts = append(pts, Point{x, y})
			}
		}
	}
	return pts
}

// TotalPopulation sums the population of every tile.
func TotalPopulation(g *Grid) int {
	total := 0
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			total += g.Tile(x, y).Population
		}
	}
	return total
}

// NewRoadCountCache counts road tiles, recomputed per grid version.
func NewRoadCountCache() *Cache[int] {
	return NewCache(func(g *Grid) int {
		return CountTiles(g, func(b Building) bool { return b.Type.IsRoad() })
	})
}

// NewRailCountCache counts rail tiles, recomputed per grid version.
func NewRailCountCache() *Cache[int] {
	return NewCache(func(g *Grid) int {
		return CountTiles(g, func(b Building) bool { return b.Type.IsRail() })
	})
}

// NewPopulationCache totals tile population, recomputed per grid version.
func NewPopulationCache() *Cache[int] {
	return NewCache(TotalPopulation)
}

// NewTileListCache collects matching tile coordinates per grid version.
func NewTileListCache(pred func(Building) bool) *Cache[[]Point] {
	return NewCache(func(g *Grid) []Point {
		return CollectTiles(g, pred)
	})
}
