package grid

// Junction classifies a passable tile by its connectivity pattern. The
// classification drives light placement, lane striping, and exit choices.
type Junction uint8

const (
	JunctionDeadEnd Junction = iota
	JunctionStraight
	JunctionCorner
	JunctionT
	JunctionCross
)

// String returns the lowercase junction name.
func (j Junction) String() string {
	switch j {
	case JunctionDeadEnd:
		return "dead_end"
	case JunctionStraight:
		return "straight"
	case JunctionCorner:
		return "corner"
	case JunctionT:
		return "t"
	case JunctionCross:
		return "cross"
	}
	return "unknown"
}

// Adjacency reports, for each cardinal neighbor of (x, y), whether it
// satisfies the surface. Runs every frame for every visible tile, so it
// probes exactly four tiles and allocates nothing.
func Adjacency(g *Grid, x, y int, s Surface) (n, e, so, w bool) {
	n = g.Passable(x, y-1, s)
	e = g.Passable(x+1, y, s)
	so = g.Passable(x, y+1, s)
	w = g.Passable(x-1, y, s)
	return
}

// Exits returns the directions an agent at (x, y) can depart toward, in
// fixed N/E/S/W order. The tile itself need not be passable (used when
// probing spawn candidates before placing an agent).
func Exits(g *Grid, x, y int, s Surface) []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		dx, dy := d.Delta()
		if g.Passable(x+dx, y+dy, s) {
			out = append(out, d)
		}
	}
	return out
}

// Classify categorizes the junction at (x, y) by its connection pattern:
// 0 or 1 connections → dead end, 2 opposite → straight, 2 adjacent → corner,
// 3 → T, 4 → cross. An isolated tile counts as a dead end.
func Classify(g *Grid, x, y int, s Surface) Junction {
	n, e, so, w := Adjacency(g, x, y, s)
	count := 0
	for _, c := range [4]bool{n, e, so, w} {
		if c {
			count++
		}
	}
	switch count {
	case 0, 1:
		return JunctionDeadEnd
	case 2:
		if (n && so) || (e && w) {
			return JunctionStraight
		}
		return JunctionCorner
	case 3:
		return JunctionT
	}
	return JunctionCross
}

// ThroughAxisHorizontal reports, for a T junction, whether the continuous
// axis runs east/west. Falls back to true when the tile is not a T.
func ThroughAxisHorizontal(g *Grid, x, y int, s Surface) bool {
	n, e, so, w := Adjacency(g, x, y, s)
	if e && w {
		return true
	}
	if n && so {
		return false
	}
	return true
}

// ParallelCount returns how many same-axis passable tiles run alongside
// (x, y), itself included, clamped to 4. Parallel roads render as multi-lane
// carriageways; the count picks the lane sprite variant.
func ParallelCount(g *Grid, x, y int, s Surface) int {
	if !g.Passable(x, y, s) {
		return 0
	}
	// The travel axis is the one with connections; scan perpendicular to it.
	_, e, _, w := Adjacency(g, x, y, s)
	horizontal := e || w
	count := 1
	for off := 1; off <= 3; off++ {
		var ax, ay, bx, by int
		if horizontal {
			ax, ay, bx, by = x, y-off, x, y+off
		} else {
			ax, ay, bx, by = x-off, y, x+off, y
		}
		grew := false
		if g.Passable(ax, ay, s) && count < 4 {
			count++
			grew = true
		}
		if g.Passable(bx, by, s) && count < 4 {
			count++
			grew = true
		}
		if !grew {
			break
		}
	}
	return count
}

// NearestPassable spiral-searches outward from (x, y) for the closest tile
// satisfying the surface, up to maxRadius rings. Returns ok=false when the
// neighborhood has none; callers then cull the stranded agent.
func NearestPassable(g *Grid, x, y, maxRadius int, s Surface) (Point, bool) {
	if g.Passable(x, y, s) {
		return Point{x, y}, true
	}
	for radius := 1; radius <= maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if absInt(dx) != radius && absInt(dy) != radius {
					continue
				}
				if g.Passable(x+dx, y+dy, s) {
					return Point{x + dx, y + dy}, true
				}
			}
		}
	}
	return Point{}, false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
