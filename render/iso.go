// Package render provides the isometric projection, the cheap depth
// occlusion test, and a draw context wrapping raylib calls behind the
// camera transform.
package render

// Isometric tile footprint in world units. World coordinates are the
// already-projected 2:1 diamond plane; the camera pans and zooms over it.
const (
	TileHalfW float32 = 32
	TileHalfH float32 = 16
)

// TileToWorld projects fractional tile coordinates onto the world plane.
// Integer inputs land on tile centers.
func TileToWorld(fx, fy float64) (wx, wy float32) {
	wx = float32(fx-fy) * TileHalfW
	wy = float32(fx+fy) * TileHalfH
	return
}

// WorldToTile inverts the projection, returning the tile whose center is
// nearest to the world point. The result may be out of grid bounds; callers
// check.
func WorldToTile(wx, wy float32) (tileX, tileY int) {
	fx := float64(wx)/float64(2*TileHalfW) + float64(wy)/float64(2*TileHalfH)
	fy := float64(wy)/float64(2*TileHalfH) - float64(wx)/float64(2*TileHalfW)
	return roundToInt(fx), roundToInt(fy)
}

func roundToInt(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

// Depth is the isometric draw-order key: larger values draw later (closer
// to the viewer).
func Depth(tileX, tileY int) int { return tileX + tileY }

// TravelVector returns the normalized world-plane direction of tile travel
// (dx, dy are the tile-coordinate deltas of a cardinal direction).
func TravelVector(dx, dy int) (vx, vy float32) {
	wx, wy := TileToWorld(float64(dx), float64(dy))
	// Cardinal steps always project to the same length.
	length := float32(35.777088) // hypot(32, 16)
	return wx / length, wy / length
}
