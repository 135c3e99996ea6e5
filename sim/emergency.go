package sim

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/pathfind"
	"minipolis/render"
)

type emergencyState int

const (
	dispatching emergencyState = iota
	responding
	returning
)

// EmergencyVehicle runs a three-leg lifecycle: out to the incident, a fixed
// on-scene hold, and a return trip to its station. Any failed leg despawns
// the vehicle.
type EmergencyVehicle struct {
	ID         uint64
	Kind       EmergencyKind
	State      emergencyState
	Path       pathfind.Path
	Progress   float64
	Station    grid.Point // road tile beside the dispatching station
	IncidentID uint64
	Hold       float64
	dead       bool
}

// Emergency manages dispatch vehicles. Unlike the other managers there is no
// spawn timer: vehicles exist only in response to incidents drained from the
// shared registry or an explicit Dispatch call.
type Emergency struct {
	grid      *grid.Grid
	cfg       *config.EmergencyConfig
	rng       *rand.Rand
	incidents *Incidents
	stations  *grid.Cache[[]grid.Point]
	nextID    uint64
	flash     float64
	vehicles  []EmergencyVehicle
}

// NewEmergency creates the emergency manager around a shared registry.
func NewEmergency(g *grid.Grid, cfg *config.EmergencyConfig, rng *rand.Rand, incidents *Incidents) *Emergency {
	return &Emergency{
		grid:      g,
		cfg:       cfg,
		rng:       rng,
		incidents: incidents,
		stations: grid.NewTileListCache(func(b grid.Building) bool {
			return b.Powered && (b.Type == grid.FireStation || b.Type == grid.PoliceStation || b.Type == grid.Hospital)
		}),
	}
}

// Count returns the number of vehicles currently out.
func (m *Emergency) Count() int { return len(m.vehicles) }

// Update drains unclaimed incidents into new dispatches, then advances every
// vehicle through its lifecycle.
func (m *Emergency) Update(dt float64) {
	if m.grid.Size() <= 0 {
		m.vehicles = m.vehicles[:0]
		return
	}
	m.flash += dt

	for len(m.vehicles) < m.cfg.MaxActive {
		inc, ok := m.incidents.NextUnclaimed()
		if !ok {
			break
		}
		if !m.dispatchTo(inc) {
			// No station, no road access or no route: the call goes
			// unanswered and is dropped.
			m.incidents.Resolve(inc.ID)
		}
	}

	for i := range m.vehicles {
		m.updateVehicle(&m.vehicles[i], dt)
	}
	for i := 0; i < len(m.vehicles); {
		if m.vehicles[i].dead {
			m.vehicles[i] = m.vehicles[len(m.vehicles)-1]
			m.vehicles = m.vehicles[:len(m.vehicles)-1]
		} else {
			i++
		}
	}
}

// roadBeside returns a road tile cardinally adjacent to p.
func (m *Emergency) roadBeside(p grid.Point) (grid.Point, bool) {
	if m.grid.Passable(p.X, p.Y, grid.RoadSurface) {
		return p, true
	}
	for _, d := range grid.Directions {
		n := p.Step(d)
		if m.grid.Passable(n.X, n.Y, grid.RoadSurface) {
			return n, true
		}
	}
	return grid.Point{}, false
}

// nearestStation picks the matching station closest to the incident by
// squared tile distance.
func (m *Emergency) nearestStation(kind EmergencyKind, near grid.Point) (grid.Point, bool) {
	want := kind.StationType()
	best := grid.Point{}
	bestDist := math.MaxInt
	for _, s := range m.stations.Get(m.grid) {
		if m.grid.Tile(s.X, s.Y).Type != want {
			continue
		}
		dx, dy := s.X-near.X, s.Y-near.Y
		d := dx*dx + dy*dy
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, bestDist != math.MaxInt
}

// dispatchTo claims an incident and puts a vehicle on the road toward it.
func (m *Emergency) dispatchTo(inc Incident) bool {
	station, ok := m.nearestStation(inc.Kind, inc.Tile)
	if !ok {
		return false
	}
	if !m.startVehicle(inc.Kind, station, inc.Tile, inc.ID) {
		return false
	}
	m.incidents.Claim(inc.ID)
	return true
}

// Dispatch sends a vehicle from an explicit station tile to a target tile,
// bypassing the registry. Used by external triggers.
func (m *Emergency) Dispatch(kind EmergencyKind, station, target grid.Point) bool {
	if len(m.vehicles) >= m.cfg.MaxActive {
		return false
	}
	return m.startVehicle(kind, station, target, 0)
}

func (m *Emergency) startVehicle(kind EmergencyKind, station, target grid.Point, incidentID uint64) bool {
	from, ok := m.roadBeside(station)
	if !ok {
		return false
	}
	to, ok := m.roadBeside(target)
	if !ok {
		return false
	}
	points := pathfind.Find(m.grid, from, to, grid.RoadSurface)
	if points == nil {
		return false
	}

	m.nextID++
	m.vehicles = append(m.vehicles, EmergencyVehicle{
		ID:         m.nextID,
		Kind:       kind,
		State:      dispatching,
		Path:       pathfind.NewPath(points),
		Station:    from,
		IncidentID: incidentID,
	})
	return true
}

// fail despawns the vehicle and closes out its incident claim. A failure on
// the way out drops the call entirely; the scene was never worked.
func (m *Emergency) fail(v *EmergencyVehicle) {
	v.dead = true
	if v.IncidentID != 0 && v.State == dispatching {
		m.incidents.Resolve(v.IncidentID)
	}
}

func (m *Emergency) updateVehicle(v *EmergencyVehicle, dt float64) {
	if v.State == responding {
		v.Hold -= dt
		if v.Hold > 0 {
			return
		}
		// Scene worked: the call is closed and the vehicle heads home.
		if v.IncidentID != 0 {
			m.incidents.Resolve(v.IncidentID)
			v.IncidentID = 0
		}
		points := pathfind.Find(m.grid, v.Path.Current(), v.Station, grid.RoadSurface)
		if points == nil {
			v.dead = true
			return
		}
		v.State = returning
		v.Path = pathfind.NewPath(points)
		v.Progress = 0
		return
	}

	cur := v.Path.Current()
	if !m.grid.Passable(cur.X, cur.Y, grid.RoadSurface) {
		p, ok := grid.NearestPassable(m.grid, cur.X, cur.Y, m.cfg.RelocateRadius, grid.RoadSurface)
		if !ok {
			m.fail(v)
			return
		}
		goal := v.Path.Points[len(v.Path.Points)-1]
		points := pathfind.Find(m.grid, p, goal, grid.RoadSurface)
		if points == nil {
			m.fail(v)
			return
		}
		v.Path = pathfind.NewPath(points)
		v.Progress = 0
		return
	}

	if v.Path.AtEnd() {
		switch v.State {
		case dispatching:
			v.State = responding
			v.Hold = m.cfg.SceneHold
		case returning:
			v.dead = true // back at the station
		}
		return
	}

	v.Progress += m.cfg.Speed * dt
	for v.Progress >= 1 && !v.Path.AtEnd() {
		next, _ := v.Path.Next()
		if !m.grid.Passable(next.X, next.Y, grid.RoadSurface) {
			goal := v.Path.Points[len(v.Path.Points)-1]
			points := pathfind.Find(m.grid, cur, goal, grid.RoadSurface)
			if points == nil {
				m.fail(v)
				return
			}
			v.Path = pathfind.NewPath(points)
			v.Progress = 0
			return
		}
		v.Progress -= 1
		v.Path.Advance()
	}
	if v.Path.AtEnd() && v.Progress >= 1 {
		v.Progress = 0
	}
}

func (k EmergencyKind) bodyColor() rl.Color {
	switch k {
	case Fire:
		return rl.Color{R: 200, G: 40, B: 35, A: 255}
	case Police:
		return rl.Color{R: 40, G: 60, B: 140, A: 255}
	default:
		return rl.Color{R: 240, G: 240, B: 245, A: 255}
	}
}

// Draw emits vehicle bodies with an alternating beacon.
func (m *Emergency) Draw(ctx *render.Context) {
	beacon := rl.Color{R: 230, G: 40, B: 40, A: 255}
	if int(m.flash*4)%2 == 0 {
		beacon = rl.Color{R: 50, G: 90, B: 240, A: 255}
	}

	for i := range m.vehicles {
		v := &m.vehicles[i]
		cur := v.Path.Current()
		dir := v.Path.Direction()
		prog := v.Progress
		if v.State == responding {
			prog = 0
		}
		wx, wy := groundWorldPos(cur.X, cur.Y, dir, prog, 4.5)
		if !ctx.Visible(wx, wy, 16) {
			continue
		}
		if render.Occluded(m.grid, cur.X, cur.Y) {
			continue
		}

		w, h := float32(12), float32(6.5)
		if !dir.Horizontal() {
			w, h = 8, 8.5
		}
		ctx.DrawRect(wx, wy-2, w, h, v.Kind.bodyColor())
		ctx.DrawRect(wx, wy-4, 3, 3, beacon)
	}
}
