package sim

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/render"
)

// carPalette is the pool of body colors assigned at spawn.
var carPalette = []rl.Color{
	{R: 200, G: 60, B: 50, A: 255},
	{R: 60, G: 110, B: 190, A: 255},
	{R: 230, G: 230, B: 235, A: 255},
	{R: 40, G: 40, B: 45, A: 255},
	{R: 190, G: 160, B: 60, A: 255},
	{R: 90, G: 150, B: 90, A: 255},
}

// Car is a road agent locked to the tile grid. Visual attributes are chosen
// at spawn and never change.
type Car struct {
	ID         uint64
	TileX      int
	TileY      int
	Progress   float64 // fractional advance toward the next cell, [0,1)
	Dir        grid.Direction
	LaneOffset float64
	Age        float64
	MaxAge     float64
	Color      rl.Color
	Size       float32
	dead       bool
}

// Cars manages the car population: spawn throttling, per-frame advancement,
// boundary direction choices, and repair-or-cull on grid edits.
type Cars struct {
	grid      *grid.Grid
	cfg       *config.CarsConfig
	rng       *rand.Rand
	roadCount *grid.Cache[int]
	spawn     spawnTimer
	nextID    uint64
	cars      []Car
}

// NewCars creates the car manager.
func NewCars(g *grid.Grid, cfg *config.CarsConfig, rng *rand.Rand) *Cars {
	return &Cars{
		grid:      g,
		cfg:       cfg,
		rng:       rng,
		roadCount: grid.NewRoadCountCache(),
		spawn:     newSpawnTimer(cfg.Spawn, rng),
	}
}

// Count returns the live car population.
func (m *Cars) Count() int { return len(m.cars) }

// capacity derives the population ceiling from the road network size.
func (m *Cars) capacity() int {
	cap := m.roadCount.Get(m.grid) / m.cfg.TilesPerCar
	if cap > m.cfg.MaxCount {
		cap = m.cfg.MaxCount
	}
	return cap
}

// Update advances spawn throttling and every live car by dt seconds of
// simulation time.
func (m *Cars) Update(dt float64) {
	if m.grid.Size() <= 0 {
		m.cars = m.cars[:0]
		return
	}

	if m.spawn.tick(dt) {
		ok := false
		if len(m.cars) < m.capacity() {
			ok = m.trySpawn()
		}
		m.spawn.reset(m.rng, ok)
	}

	for i := range m.cars {
		m.updateCar(&m.cars[i], dt)
	}
	m.removeDead()
}

// trySpawn probes a bounded number of random tiles for a road with at least
// one departure direction. Exhausting the budget is a routine failure.
func (m *Cars) trySpawn() bool {
	size := m.grid.Size()
	for attempt := 0; attempt < m.cfg.Spawn.Candidates; attempt++ {
		x := m.rng.Intn(size)
		y := m.rng.Intn(size)
		if !m.grid.Passable(x, y, grid.RoadSurface) {
			continue
		}
		exits := grid.Exits(m.grid, x, y, grid.RoadSurface)
		if len(exits) == 0 {
			continue
		}

		m.nextID++
		m.cars = append(m.cars, Car{
			ID:         m.nextID,
			TileX:      x,
			TileY:      y,
			Dir:        exits[m.rng.Intn(len(exits))],
			LaneOffset: 4.5 + m.rng.Float64()*1.5,
			MaxAge:     randRange(m.rng, m.cfg.MinAge, m.cfg.MaxAge),
			Color:      carPalette[m.rng.Intn(len(carPalette))],
			Size:       6 + float32(m.rng.Intn(4)),
		})
		return true
	}
	return false
}

func (m *Cars) updateCar(c *Car, dt float64) {
	c.Age += dt
	if c.Age >= c.MaxAge {
		c.dead = true
		return
	}

	// The player may have bulldozed the road under the car: relocate to the
	// nearest road tile within a small radius, or cull.
	if !m.grid.Passable(c.TileX, c.TileY, grid.RoadSurface) {
		p, ok := grid.NearestPassable(m.grid, c.TileX, c.TileY, m.cfg.RelocateRadius, grid.RoadSurface)
		if !ok {
			c.dead = true
			return
		}
		c.TileX, c.TileY = p.X, p.Y
		c.Progress = 0
		dir, ok := chooseExit(m.grid, m.rng, c.TileX, c.TileY, c.Dir, grid.RoadSurface)
		if !ok {
			c.dead = true
			return
		}
		c.Dir = dir
	}

	c.Progress += m.cfg.Speed * dt
	for c.Progress >= 1 {
		c.Progress -= 1
		next := grid.Point{X: c.TileX, Y: c.TileY}.Step(c.Dir)
		if !m.grid.Passable(next.X, next.Y, grid.RoadSurface) {
			// Edge hit mid-crossing; stay put and re-decide below.
			c.Progress = 0
			next = grid.Point{X: c.TileX, Y: c.TileY}
		}
		c.TileX, c.TileY = next.X, next.Y

		dir, ok := chooseExit(m.grid, m.rng, c.TileX, c.TileY, c.Dir, grid.RoadSurface)
		if !ok {
			// Dead end with no viable next direction.
			c.dead = true
			return
		}
		c.Dir = dir
	}
}

// removeDead compacts the live set with swap-remove.
func (m *Cars) removeDead() {
	for i := 0; i < len(m.cars); {
		if m.cars[i].dead {
			m.cars[i] = m.cars[len(m.cars)-1]
			m.cars = m.cars[:len(m.cars)-1]
		} else {
			i++
		}
	}
}

// Draw emits every visible, non-occluded car.
func (m *Cars) Draw(ctx *render.Context) {
	for i := range m.cars {
		c := &m.cars[i]
		wx, wy := groundWorldPos(c.TileX, c.TileY, c.Dir, c.Progress, c.LaneOffset)
		if !ctx.Visible(wx, wy, c.Size*2) {
			continue
		}
		if render.Occluded(m.grid, c.TileX, c.TileY) {
			continue
		}
		w, h := c.Size*1.6, c.Size*0.9
		if !c.Dir.Horizontal() {
			// North/south travel projects steeper; swap the footprint.
			w, h = c.Size*1.1, c.Size*1.2
		}
		ctx.DrawRect(wx, wy-2, w, h, c.Color)
		// Cabin.
		ctx.DrawRect(wx, wy-3, w*0.45, h*0.6, rl.Color{R: 30, G: 35, B: 45, A: 255})
	}
}
