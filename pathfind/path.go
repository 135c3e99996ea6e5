package pathfind

import "minipolis/grid"

// Path is an ordered sequence of tile coordinates consumed index-by-index as
// an agent advances. It is immutable once assigned; choosing a new
// destination replaces the whole path.
type Path struct {
	Points []grid.Point
	Index  int
}

// NewPath wraps a coordinate sequence from Find.
func NewPath(points []grid.Point) Path {
	return Path{Points: points}
}

// Valid reports whether the path has any points at all.
func (p *Path) Valid() bool { return len(p.Points) > 0 }

// Current returns the coordinate the agent currently occupies.
func (p *Path) Current() grid.Point {
	return p.Points[p.Index]
}

// AtEnd reports whether the agent is on the final coordinate.
func (p *Path) AtEnd() bool { return p.Index >= len(p.Points)-1 }

// Next returns the upcoming coordinate and whether one exists.
func (p *Path) Next() (grid.Point, bool) {
	if p.AtEnd() {
		return grid.Point{}, false
	}
	return p.Points[p.Index+1], true
}

// Advance moves to the next coordinate. Calling it at the end is a no-op.
func (p *Path) Advance() {
	if !p.AtEnd() {
		p.Index++
	}
}

// Direction returns the travel direction from the current coordinate toward
// the next one. Falls back to East on a finished or single-tile path.
func (p *Path) Direction() grid.Direction {
	next, ok := p.Next()
	if !ok {
		return grid.East
	}
	cur := p.Current()
	switch {
	case next.Y < cur.Y:
		return grid.North
	case next.X > cur.X:
		return grid.East
	case next.Y > cur.Y:
		return grid.South
	default:
		return grid.West
	}
}
