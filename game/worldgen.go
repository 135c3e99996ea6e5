package game

import (
	"math/rand"

	"minipolis/grid"
)

// GenerateCity seeds a demo city onto an empty grid: a street grid with
// zoned lots, a rail line with stations, service buildings and some
// terrain. Deterministic for a given rng.
func GenerateCity(g *grid.Grid, rng *rand.Rand) {
	n := g.Size()
	if n < 16 {
		return
	}
	margin := 4

	// Terrain first so streets can pave over it.
	scatterTrees(g, rng, n*n/40)
	waterBlob(g, rng, n-n/8, n/8, n/10)

	// Street grid.
	for y := margin; y <= n-margin; y += 6 {
		for x := margin; x <= n-margin; x++ {
			paveRoad(g, x, y)
		}
	}
	for x := margin; x <= n-margin; x += 6 {
		for y := margin; y <= n-margin; y++ {
			paveRoad(g, x, y)
		}
	}

	// Zoned lots along the streets.
	roads := collectRoads(g)
	for _, p := range roads {
		for _, d := range grid.Directions {
			lot := p.Step(d)
			if !buildable(g, lot) {
				continue
			}
			switch roll := rng.Float64(); {
			case roll < 0.30:
				g.SetTile(lot.X, lot.Y, grid.Building{
					Type:       grid.Residential,
					Powered:    true,
					Population: 20 + rng.Intn(80),
				})
			case roll < 0.45:
				g.SetTile(lot.X, lot.Y, grid.Building{Type: grid.Commercial, Powered: true})
			case roll < 0.55:
				g.SetTile(lot.X, lot.Y, grid.Building{Type: grid.Industrial, Powered: true})
			case roll < 0.60:
				g.SetTile(lot.X, lot.Y, grid.Building{Type: grid.Park})
			}
		}
	}

	// One of each service, somewhere with road frontage.
	for _, bt := range []grid.BuildingType{
		grid.PowerPlant, grid.FireStation, grid.PoliceStation,
		grid.Hospital, grid.Stadium, grid.Airport,
	} {
		placeBeside(g, rng, roads, bt)
	}

	// A rail line across the top with a station at each end.
	railY := 2
	x0, x1 := margin, n-margin
	for x := x0; x <= x1; x++ {
		g.SetTile(x, railY, grid.Building{Type: grid.Rail})
	}
	g.SetTile(x0, railY+1, grid.Building{Type: grid.TrainStation, Powered: true})
	g.SetTile(x1, railY+1, grid.Building{Type: grid.TrainStation, Powered: true})
}

func scatterTrees(g *grid.Grid, rng *rand.Rand, count int) {
	n := g.Size()
	for i := 0; i < count; i++ {
		x, y := rng.Intn(n), rng.Intn(n)
		if g.Tile(x, y).Type == grid.Grass {
			g.SetTile(x, y, grid.Building{Type: grid.Trees})
		}
	}
}

func waterBlob(g *grid.Grid, rng *rand.Rand, cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if g.InBounds(x, y) {
				g.SetTile(x, y, grid.Building{Type: grid.Water})
			}
		}
	}
}

// paveRoad lays road over anything except water.
func paveRoad(g *grid.Grid, x, y int) {
	if !g.InBounds(x, y) || g.Tile(x, y).Type == grid.Water {
		return
	}
	g.SetTile(x, y, grid.Building{Type: grid.Road})
}

func collectRoads(g *grid.Grid) []grid.Point {
	n := g.Size()
	var out []grid.Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if g.Tile(x, y).Type.IsRoad() {
				out = append(out, grid.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// buildable reports whether a lot can take a structure: in bounds, and
// currently just grass or trees.
func buildable(g *grid.Grid, p grid.Point) bool {
	if !g.InBounds(p.X, p.Y) {
		return false
	}
	t := g.Tile(p.X, p.Y).Type
	return t == grid.Grass || t == grid.Trees
}

// placeBeside puts a structure on a random buildable lot with road frontage.
func placeBeside(g *grid.Grid, rng *rand.Rand, roads []grid.Point, bt grid.BuildingType) {
	if len(roads) == 0 {
		return
	}
	for attempt := 0; attempt < 50; attempt++ {
		road := roads[rng.Intn(len(roads))]
		lot := road.Step(grid.Directions[rng.Intn(len(grid.Directions))])
		if buildable(g, lot) {
			g.SetTile(lot.X, lot.Y, grid.Building{Type: bt, Powered: true})
			return
		}
	}
}
