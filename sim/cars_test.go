package sim

import (
	"math/rand"
	"testing"

	"minipolis/config"
	"minipolis/grid"
)

func testCarsConfig() *config.CarsConfig {
	return &config.CarsConfig{
		TilesPerCar:    1,
		MaxCount:       50,
		Speed:          1.0,
		MinAge:         100,
		MaxAge:         200,
		RelocateRadius: 2,
		Spawn: config.SpawnTimerConfig{
			SuccessMin: 0.1, SuccessMax: 0.2,
			FailureMin: 0.5, FailureMax: 1.0,
			Candidates: 10,
		},
	}
}

func horizontalRoadGrid(size, row int) *grid.Grid {
	g := grid.New(size)
	for x := 0; x < size; x++ {
		g.SetTile(x, row, grid.Building{Type: grid.Road})
	}
	return g
}

func TestStraightRoadSpawnDirections(t *testing.T) {
	g := horizontalRoadGrid(5, 2)
	m := NewCars(g, testCarsConfig(), rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		m.trySpawn()
	}
	if len(m.cars) == 0 {
		t.Fatal("no cars spawned on a connected road row")
	}
	for _, c := range m.cars {
		if c.Dir != grid.East && c.Dir != grid.West {
			t.Errorf("car %d spawned heading %v on a horizontal road", c.ID, c.Dir)
		}
		if c.TileY != 2 {
			t.Errorf("car %d spawned off the road row at y=%d", c.ID, c.TileY)
		}
	}
}

func TestCarDeadEndDespawn(t *testing.T) {
	g := grid.New(5)
	g.SetTile(1, 1, grid.Building{Type: grid.Road})
	g.SetTile(2, 1, grid.Building{Type: grid.Road})
	m := NewCars(g, testCarsConfig(), rand.New(rand.NewSource(1)))

	m.cars = append(m.cars, Car{ID: 1, TileX: 1, TileY: 1, Dir: grid.East, MaxAge: 1000})
	m.updateCar(&m.cars[0], 1.0) // crosses into (2,1), reverses at the dead end
	if m.cars[0].dead {
		t.Fatal("car died with a reversal still available")
	}
	if m.cars[0].TileX != 2 {
		t.Fatalf("car at x=%d, want 2", m.cars[0].TileX)
	}

	// Bulldoze the road behind it; the dead end now has no viable exit.
	g.SetTile(1, 1, grid.Building{Type: grid.Grass})
	m.Update(1.0)
	if m.Count() != 0 {
		t.Errorf("car not removed at a dead end with no viable direction, count=%d", m.Count())
	}
}

func TestCarBoundedAge(t *testing.T) {
	g := horizontalRoadGrid(5, 2)
	cfg := testCarsConfig()
	cfg.MaxCount = 0 // no background spawns
	m := NewCars(g, cfg, rand.New(rand.NewSource(3)))
	m.cars = append(m.cars, Car{ID: 1, TileX: 2, TileY: 2, Dir: grid.East, MaxAge: 1.0})

	for i := 0; i < 12; i++ {
		m.Update(0.1)
	}
	if m.Count() != 0 {
		t.Errorf("car outlived maxAge, count=%d", m.Count())
	}
}

func TestCarProgressNormalization(t *testing.T) {
	g := horizontalRoadGrid(8, 3)
	m := NewCars(g, testCarsConfig(), rand.New(rand.NewSource(4)))
	for i := 0; i < 10; i++ {
		m.trySpawn()
	}

	for i := 0; i < 200; i++ {
		m.Update(0.037)
		for _, c := range m.cars {
			if c.Progress < 0 || c.Progress >= 1 {
				t.Fatalf("car %d progress %f out of [0,1)", c.ID, c.Progress)
			}
		}
	}
}

func TestCarNoReversalOnRingRoad(t *testing.T) {
	// 4x4 ring: every tile has exactly two exits, never opposite ones.
	g := grid.New(6)
	for i := 1; i <= 4; i++ {
		g.SetTile(i, 1, grid.Building{Type: grid.Road})
		g.SetTile(i, 4, grid.Building{Type: grid.Road})
		g.SetTile(1, i, grid.Building{Type: grid.Road})
		g.SetTile(4, i, grid.Building{Type: grid.Road})
	}
	cfg := testCarsConfig()
	cfg.MaxCount = 0
	m := NewCars(g, cfg, rand.New(rand.NewSource(5)))
	m.cars = append(m.cars, Car{ID: 1, TileX: 2, TileY: 1, Dir: grid.East, MaxAge: 1e9})

	prev := m.cars[0].Dir
	for i := 0; i < 500; i++ {
		m.Update(0.2)
		if m.Count() != 1 {
			t.Fatal("car left the ring")
		}
		cur := m.cars[0].Dir
		if cur == prev.Opposite() {
			t.Fatalf("car reversed from %v to %v with other options available", prev, cur)
		}
		prev = cur
	}
}

func TestCarRelocatesAfterEdit(t *testing.T) {
	g := horizontalRoadGrid(5, 2)
	cfg := testCarsConfig()
	cfg.MaxCount = 0
	m := NewCars(g, cfg, rand.New(rand.NewSource(6)))
	m.cars = append(m.cars, Car{ID: 1, TileX: 2, TileY: 2, Dir: grid.East, MaxAge: 1000})

	// Replace the tile under the car; the rest of the row survives.
	g.SetTile(2, 2, grid.Building{Type: grid.Residential})
	m.Update(0.01)
	if m.Count() != 1 {
		t.Fatal("car culled despite road within relocate radius")
	}
	c := m.cars[0]
	if !g.Passable(c.TileX, c.TileY, grid.RoadSurface) {
		t.Errorf("car sits on a non-road tile (%d,%d) after relocation", c.TileX, c.TileY)
	}
}

func TestCarCulledWhenNoRoadNearby(t *testing.T) {
	g := grid.New(9)
	g.SetTile(4, 4, grid.Building{Type: grid.Road})
	m := NewCars(g, testCarsConfig(), rand.New(rand.NewSource(7)))
	m.cars = append(m.cars, Car{ID: 1, TileX: 4, TileY: 4, Dir: grid.East, MaxAge: 1000})

	g.SetTile(4, 4, grid.Building{Type: grid.Water})
	m.Update(0.01)
	if m.Count() != 0 {
		t.Error("stranded car survived with no road in the search radius")
	}
}

func TestCarCapacityCeiling(t *testing.T) {
	g := horizontalRoadGrid(5, 2) // 5 road tiles
	cfg := testCarsConfig()
	cfg.TilesPerCar = 6 // capacity 0
	m := NewCars(g, cfg, rand.New(rand.NewSource(8)))

	for i := 0; i < 100; i++ {
		m.Update(0.5)
	}
	if m.Count() != 0 {
		t.Errorf("cars spawned above the capacity ceiling, count=%d", m.Count())
	}
}

func TestCarsClearOnEmptyGrid(t *testing.T) {
	g := grid.New(0)
	m := NewCars(g, testCarsConfig(), rand.New(rand.NewSource(9)))
	m.cars = append(m.cars, Car{ID: 1})
	m.Update(0.1)
	if m.Count() != 0 {
		t.Error("agents kept on a malformed grid")
	}
}
