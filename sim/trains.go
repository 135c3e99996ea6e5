package sim

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/pathfind"
	"minipolis/render"
)

var trainPalette = []rl.Color{
	{R: 70, G: 80, B: 95, A: 255},
	{R: 130, G: 45, B: 45, A: 255},
	{R: 45, G: 90, B: 70, A: 255},
}

// Train rides the rail network between stations, leg by leg: when a path is
// consumed it picks a fresh destination station and the path is replaced
// wholesale.
type Train struct {
	ID       uint64
	Path     pathfind.Path
	Progress float64
	Age      float64
	MaxAge   float64
	Color    rl.Color
	dead     bool
}

// Trains manages the train population. Trains run station to station and
// only appear once the rail network reaches a minimum size, so a city needs
// both track and at least two connected stations before any show up.
type Trains struct {
	grid      *grid.Grid
	cfg       *config.TrainsConfig
	rng       *rand.Rand
	railCount *grid.Cache[int]
	stations  *grid.Cache[[]grid.Point]
	spawn     spawnTimer
	nextID    uint64
	trains    []Train
}

// NewTrains creates the train manager.
func NewTrains(g *grid.Grid, cfg *config.TrainsConfig, rng *rand.Rand) *Trains {
	return &Trains{
		grid:      g,
		cfg:       cfg,
		rng:       rng,
		railCount: grid.NewRailCountCache(),
		stations: grid.NewTileListCache(func(b grid.Building) bool {
			return b.Type == grid.TrainStation
		}),
		spawn: newSpawnTimer(cfg.Spawn, rng),
	}
}

// Count returns the live train population.
func (m *Trains) Count() int { return len(m.trains) }

func (m *Trains) capacity() int {
	rails := m.railCount.Get(m.grid)
	if rails < m.cfg.MinRailTiles {
		return 0
	}
	cap := rails / m.cfg.TilesPerTrain
	if cap < 1 {
		cap = 1
	}
	if cap > m.cfg.MaxCount {
		cap = m.cfg.MaxCount
	}
	return cap
}

// Update advances spawn throttling and every live train.
func (m *Trains) Update(dt float64) {
	if m.grid.Size() <= 0 {
		m.trains = m.trains[:0]
		return
	}

	if m.spawn.tick(dt) {
		ok := false
		if len(m.trains) < m.capacity() {
			ok = m.trySpawn()
		}
		m.spawn.reset(m.rng, ok)
	}

	for i := range m.trains {
		m.updateTrain(&m.trains[i], dt)
	}
	for i := 0; i < len(m.trains); {
		if m.trains[i].dead {
			m.trains[i] = m.trains[len(m.trains)-1]
			m.trains = m.trains[:len(m.trains)-1]
		} else {
			i++
		}
	}
}

// railBeside returns a rail tile cardinally adjacent to p (or p itself).
func (m *Trains) railBeside(p grid.Point) (grid.Point, bool) {
	if m.grid.Passable(p.X, p.Y, grid.RailSurface) {
		return p, true
	}
	for _, d := range grid.Directions {
		n := p.Step(d)
		if m.grid.Passable(n.X, n.Y, grid.RailSurface) {
			return n, true
		}
	}
	return grid.Point{}, false
}

// stationLeg routes from a rail tile to a randomly chosen station's rail
// access, probing a bounded number of candidates. Returns nil when every
// probe is unreachable.
func (m *Trains) stationLeg(from grid.Point) []grid.Point {
	stations := m.stations.Get(m.grid)
	if len(stations) == 0 {
		return nil
	}
	for attempt := 0; attempt < m.cfg.Spawn.Candidates; attempt++ {
		dest, ok := m.railBeside(stations[m.rng.Intn(len(stations))])
		if !ok || dest == from {
			continue
		}
		if points := pathfind.Find(m.grid, from, dest, grid.RailSurface); points != nil {
			return points
		}
	}
	return nil
}

func (m *Trains) trySpawn() bool {
	stations := m.stations.Get(m.grid)
	if len(stations) < 2 {
		return false
	}
	start, ok := m.railBeside(stations[m.rng.Intn(len(stations))])
	if !ok {
		return false
	}
	points := m.stationLeg(start)
	if points == nil {
		return false
	}

	m.nextID++
	m.trains = append(m.trains, Train{
		ID:     m.nextID,
		Path:   pathfind.NewPath(points),
		MaxAge: randRange(m.rng, m.cfg.MinAge, m.cfg.MaxAge),
		Color:  trainPalette[m.rng.Intn(len(trainPalette))],
	})
	return true
}

func (m *Trains) updateTrain(t *Train, dt float64) {
	t.Age += dt
	if t.Age >= t.MaxAge {
		t.dead = true
		return
	}

	cur := t.Path.Current()
	if !m.grid.Passable(cur.X, cur.Y, grid.RailSurface) {
		// Track torn up underneath: relocate within a short radius or cull.
		p, ok := grid.NearestPassable(m.grid, cur.X, cur.Y, 2, grid.RailSurface)
		if !ok {
			t.dead = true
			return
		}
		points := m.stationLeg(p)
		if points == nil {
			t.dead = true
			return
		}
		t.Path = pathfind.NewPath(points)
		t.Progress = 0
		return
	}

	// Leg complete: pick a new destination and replace the path wholesale.
	if t.Path.AtEnd() {
		points := m.stationLeg(cur)
		if points == nil {
			t.dead = true
			return
		}
		t.Path = pathfind.NewPath(points)
		t.Progress = 0
		return
	}

	t.Progress += m.cfg.Speed * dt
	for t.Progress >= 1 && !t.Path.AtEnd() {
		next, _ := t.Path.Next()
		if !m.grid.Passable(next.X, next.Y, grid.RailSurface) {
			t.dead = true
			return
		}
		t.Progress -= 1
		t.Path.Advance()
	}
	if t.Path.AtEnd() && t.Progress >= 1 {
		t.Progress = 0
	}
}

// Draw emits each visible train as a locomotive with one trailing car along
// the already-consumed part of its path.
func (m *Trains) Draw(ctx *render.Context) {
	for i := range m.trains {
		t := &m.trains[i]
		cur := t.Path.Current()
		dir := t.Path.Direction()
		wx, wy := groundWorldPos(cur.X, cur.Y, dir, t.Progress, 0)
		if !ctx.Visible(wx, wy, 28) {
			continue
		}
		if render.Occluded(m.grid, cur.X, cur.Y) {
			continue
		}

		drawTrainCar(ctx, wx, wy, dir, t.Color)
		if t.Path.Index > 0 {
			prev := t.Path.Points[t.Path.Index-1]
			pd := dir
			if t.Path.Index > 1 {
				pd = cardinalBetween(t.Path.Points[t.Path.Index-2], prev)
			}
			px, py := groundWorldPos(prev.X, prev.Y, pd, t.Progress, 0)
			drawTrainCar(ctx, px, py, pd, rl.Color{R: 110, G: 115, B: 125, A: 255})
		}
	}
}

func drawTrainCar(ctx *render.Context, wx, wy float32, dir grid.Direction, col rl.Color) {
	w, h := float32(16), float32(7)
	if !dir.Horizontal() {
		w, h = 11, 9
	}
	ctx.DrawRect(wx, wy-3, w, h, col)
	ctx.DrawRect(wx, wy-5, w*0.5, h*0.5, rl.Color{R: 230, G: 225, B: 200, A: 255})
}

// cardinalBetween derives the travel direction from a to an adjacent b.
func cardinalBetween(a, b grid.Point) grid.Direction {
	switch {
	case b.X > a.X:
		return grid.East
	case b.X < a.X:
		return grid.West
	case b.Y > a.Y:
		return grid.South
	default:
		return grid.North
	}
}
