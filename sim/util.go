package sim

import (
	"math/rand"

	"minipolis/grid"
	"minipolis/render"
)

// groundWorldPos projects a grid-locked agent onto the world plane:
// interpolated between the current tile center and the next one along dir
// by progress, then shifted laneOffset world units to the right of travel
// so opposing streams keep to their own side.
func groundWorldPos(tileX, tileY int, dir grid.Direction, progress, laneOffset float64) (wx, wy float32) {
	dx, dy := dir.Delta()
	fx := float64(tileX) + progress*float64(dx)
	fy := float64(tileY) + progress*float64(dy)
	wx, wy = render.TileToWorld(fx, fy)

	if laneOffset != 0 {
		vx, vy := render.TravelVector(dx, dy)
		// Right-hand perpendicular of the travel vector.
		wx += -vy * float32(laneOffset)
		wy += vx * float32(laneOffset)
	}
	return wx, wy
}

// chooseExit picks the next travel direction at a cell boundary. Reversal is
// excluded unless it is the only viable option (a dead end). Returns ok=false
// when the tile has no exits at all; the caller despawns the agent.
func chooseExit(g *grid.Grid, rng *rand.Rand, x, y int, incoming grid.Direction, s grid.Surface) (grid.Direction, bool) {
	exits := grid.Exits(g, x, y, s)
	if len(exits) == 0 {
		return incoming, false
	}
	reverse := incoming.Opposite()
	forward := exits[:0:0]
	for _, d := range exits {
		if d != reverse {
			forward = append(forward, d)
		}
	}
	if len(forward) == 0 {
		return reverse, true // dead end: reversing is allowed
	}
	return forward[rng.Intn(len(forward))], true
}
