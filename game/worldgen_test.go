package game

import (
	"math/rand"
	"testing"

	"minipolis/grid"
)

func TestGenerateCityDeterministic(t *testing.T) {
	a := grid.New(48)
	b := grid.New(48)
	GenerateCity(a, rand.New(rand.NewSource(7)))
	GenerateCity(b, rand.New(rand.NewSource(7)))

	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if a.Tile(x, y) != b.Tile(x, y) {
				t.Fatalf("tile (%d,%d) differs between equal-seed runs", x, y)
			}
		}
	}
}

func TestGenerateCityHasWorkingInfrastructure(t *testing.T) {
	g := grid.New(64)
	GenerateCity(g, rand.New(rand.NewSource(1)))

	counts := map[grid.BuildingType]int{}
	population := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			b := g.Tile(x, y)
			counts[b.Type]++
			population += b.Population
		}
	}

	if counts[grid.Road] == 0 {
		t.Error("no roads generated")
	}
	if counts[grid.Rail] < 12 {
		t.Errorf("rail tiles = %d, too few for trains", counts[grid.Rail])
	}
	if counts[grid.TrainStation] != 2 {
		t.Errorf("train stations = %d, want 2", counts[grid.TrainStation])
	}
	if counts[grid.Residential] == 0 || population == 0 {
		t.Error("no populated residences")
	}
	for _, bt := range []grid.BuildingType{grid.FireStation, grid.PoliceStation, grid.Hospital, grid.Airport} {
		if counts[bt] == 0 {
			t.Errorf("missing %v", bt)
		}
	}
}

func TestGenerateCitySkipsTinyGrids(t *testing.T) {
	g := grid.New(8)
	v := g.Version()
	GenerateCity(g, rand.New(rand.NewSource(2)))
	if g.Version() != v {
		t.Error("tiny grid was edited")
	}
}

func TestGeneratedStationsShareTrack(t *testing.T) {
	g := grid.New(48)
	GenerateCity(g, rand.New(rand.NewSource(3)))

	var stations []grid.Point
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if g.Tile(x, y).Type == grid.TrainStation {
				stations = append(stations, grid.Point{X: x, Y: y})
			}
		}
	}
	if len(stations) != 2 {
		t.Fatalf("stations = %d, want 2", len(stations))
	}
	// Both stations sit under the rail row.
	for _, s := range stations {
		if !g.Passable(s.X, s.Y-1, grid.RailSurface) {
			t.Errorf("station at %v has no rail access", s)
		}
	}
}
