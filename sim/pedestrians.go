package sim

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/pathfind"
	"minipolis/render"
)

var pedPalette = []rl.Color{
	{R: 235, G: 200, B: 160, A: 255},
	{R: 120, G: 85, B: 60, A: 255},
	{R: 70, G: 70, B: 120, A: 255},
	{R: 150, G: 60, B: 70, A: 255},
}

// Pedestrian walks a precomputed road path from a residential building to an
// amenity and then back home along a freshly computed return path.
type Pedestrian struct {
	ID        uint64
	Path      pathfind.Path
	Progress  float64
	Returning bool
	Home      grid.Point // road tile the trip started from
	Age       float64
	MaxAge    float64
	Color     rl.Color
	dead      bool
}

// Pedestrians manages the walking population. Capacity scales with total
// city population rather than network size.
type Pedestrians struct {
	grid       *grid.Grid
	cfg        *config.PedestriansConfig
	rng        *rand.Rand
	population *grid.Cache[int]
	homes      *grid.Cache[[]grid.Point]
	amenities  *grid.Cache[[]grid.Point]
	spawn      spawnTimer
	nextID     uint64
	peds       []Pedestrian
}

// NewPedestrians creates the pedestrian manager.
func NewPedestrians(g *grid.Grid, cfg *config.PedestriansConfig, rng *rand.Rand) *Pedestrians {
	return &Pedestrians{
		grid:       g,
		cfg:        cfg,
		rng:        rng,
		population: grid.NewPopulationCache(),
		homes: grid.NewTileListCache(func(b grid.Building) bool {
			return b.Type == grid.Residential && b.Powered && b.Population > 0
		}),
		amenities: grid.NewTileListCache(func(b grid.Building) bool {
			return b.Type.IsAmenity()
		}),
		spawn: newSpawnTimer(cfg.Spawn, rng),
	}
}

// Count returns the live pedestrian population.
func (m *Pedestrians) Count() int { return len(m.peds) }

func (m *Pedestrians) capacity() int {
	cap := m.population.Get(m.grid) / m.cfg.ResidentsPerPed
	if cap > m.cfg.MaxCount {
		cap = m.cfg.MaxCount
	}
	return cap
}

// Update advances spawn throttling and every live pedestrian.
func (m *Pedestrians) Update(dt float64) {
	if m.grid.Size() <= 0 {
		m.peds = m.peds[:0]
		return
	}

	if m.spawn.tick(dt) {
		ok := false
		if len(m.peds) < m.capacity() {
			ok = m.trySpawn()
		}
		m.spawn.reset(m.rng, ok)
	}

	for i := range m.peds {
		m.updatePed(&m.peds[i], dt)
	}
	for i := 0; i < len(m.peds); {
		if m.peds[i].dead {
			m.peds[i] = m.peds[len(m.peds)-1]
			m.peds = m.peds[:len(m.peds)-1]
		} else {
			i++
		}
	}
}

// roadBeside returns a road tile cardinally adjacent to the building at p.
func (m *Pedestrians) roadBeside(p grid.Point) (grid.Point, bool) {
	for _, d := range grid.Directions {
		n := p.Step(d)
		if m.grid.Passable(n.X, n.Y, grid.RoadSurface) {
			return n, true
		}
	}
	return grid.Point{}, false
}

// trySpawn picks a random occupied residence and a random amenity, both with
// road access, and routes between them. Any miss is a routine failure.
func (m *Pedestrians) trySpawn() bool {
	homes := m.homes.Get(m.grid)
	amenities := m.amenities.Get(m.grid)
	if len(homes) == 0 || len(amenities) == 0 {
		return false
	}

	for attempt := 0; attempt < m.cfg.Spawn.Candidates; attempt++ {
		home, ok := m.roadBeside(homes[m.rng.Intn(len(homes))])
		if !ok {
			continue
		}
		dest, ok := m.roadBeside(amenities[m.rng.Intn(len(amenities))])
		if !ok {
			continue
		}
		points := pathfind.Find(m.grid, home, dest, grid.RoadSurface)
		if points == nil {
			continue
		}

		m.nextID++
		m.peds = append(m.peds, Pedestrian{
			ID:     m.nextID,
			Path:   pathfind.NewPath(points),
			Home:   home,
			MaxAge: randRange(m.rng, m.cfg.MinAge, m.cfg.MaxAge),
			Color:  pedPalette[m.rng.Intn(len(pedPalette))],
		})
		return true
	}
	return false
}

func (m *Pedestrians) updatePed(p *Pedestrian, dt float64) {
	p.Age += dt
	if p.Age >= p.MaxAge {
		p.dead = true
		return
	}

	cur := p.Path.Current()
	if !m.grid.Passable(cur.X, cur.Y, grid.RoadSurface) {
		// The sidewalk was bulldozed; pedestrians just go home (despawn).
		p.dead = true
		return
	}

	// A single-tile trip counts as arrived immediately.
	if p.Path.AtEnd() {
		if p.Returning {
			p.dead = true
			return
		}
		points := pathfind.Find(m.grid, cur, p.Home, grid.RoadSurface)
		if points == nil {
			// No way home after a grid edit.
			p.dead = true
			return
		}
		p.Returning = true
		p.Path = pathfind.NewPath(points)
		p.Progress = 0
		return
	}

	p.Progress += m.cfg.Speed * dt
	for p.Progress >= 1 && !p.Path.AtEnd() {
		next, _ := p.Path.Next()
		if !m.grid.Passable(next.X, next.Y, grid.RoadSurface) {
			// Path invalidated mid-trip: try to re-route to the same goal.
			goal := p.Path.Points[len(p.Path.Points)-1]
			points := pathfind.Find(m.grid, cur, goal, grid.RoadSurface)
			if points == nil {
				p.dead = true
				return
			}
			p.Path = pathfind.NewPath(points)
			p.Progress = 0
			return
		}
		p.Progress -= 1
		p.Path.Advance()
	}
	if p.Path.AtEnd() && p.Progress >= 1 {
		p.Progress = 0
	}
}

// Draw emits every visible, non-occluded pedestrian as a small dot.
func (m *Pedestrians) Draw(ctx *render.Context) {
	for i := range m.peds {
		p := &m.peds[i]
		cur := p.Path.Current()
		dir := p.Path.Direction()
		wx, wy := groundWorldPos(cur.X, cur.Y, dir, p.Progress, 9)
		if !ctx.Visible(wx, wy, 6) {
			continue
		}
		if render.Occluded(m.grid, cur.X, cur.Y) {
			continue
		}
		ctx.DrawCircle(wx, wy-2, 1.8, p.Color)
	}
}
