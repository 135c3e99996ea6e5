package grid

// Direction is one of the four cardinal directions agents travel in.
// North decreases Y, South increases it, matching tile coordinates.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
	NumDirections
)

// Directions lists all four cardinals in fixed N/E/S/W order. Every place
// that enumerates directions uses this order so path and direction choices
// are reproducible for a fixed grid snapshot.
var Directions = [NumDirections]Direction{North, East, South, West}

// String returns the lowercase compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Delta returns the tile-coordinate step for one cell of travel.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Horizontal reports whether the direction runs along the east/west axis.
func (d Direction) Horizontal() bool { return d == East || d == West }

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Step returns the point one cell away in the given direction.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{p.X + dx, p.Y + dy}
}
