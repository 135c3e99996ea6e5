package sim

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/render"
)

type planeState int

const (
	planeTakingOff planeState = iota
	planeFlying
	planeLanding
)

// contrail is a single exhaust puff. It fades on real frame time so trails
// dissolve at the same rate regardless of the simulation speed.
type contrail struct {
	X, Y float32
	Life float64
}

// Airplane is a free-space agent: world position plus heading, not locked to
// the tile grid. Each state owns its own altitude easing and exit trigger.
type Airplane struct {
	ID       uint64
	X, Y     float32
	Angle    float64 // radians, world plane heading
	Altitude float64
	State    planeState
	Age      float64
	MaxAge   float64
	puffGap  float64
}

// Airplanes manages air traffic. Planes require a powered airport to take off
// from and land at; they wander at cruise altitude in between.
type Airplanes struct {
	grid     *grid.Grid
	cfg      *config.AirplanesConfig
	rng      *rand.Rand
	airports *grid.Cache[[]grid.Point]
	cooldown float64
	nextID   uint64
	planes   []Airplane
	puffs    []contrail
}

// NewAirplanes creates the airplane manager.
func NewAirplanes(g *grid.Grid, cfg *config.AirplanesConfig, rng *rand.Rand) *Airplanes {
	return &Airplanes{
		grid: g,
		cfg:  cfg,
		rng:  rng,
		airports: grid.NewTileListCache(func(b grid.Building) bool {
			return b.Type == grid.Airport && b.Powered
		}),
		cooldown: randRange(rng, cfg.SpawnMin, cfg.SpawnMax),
	}
}

// Count returns the live airplane population.
func (m *Airplanes) Count() int { return len(m.planes) }

// Update advances planes by dt of simulation time; realDT drives contrail
// decay only.
func (m *Airplanes) Update(dt, realDT float64) {
	if m.grid.Size() <= 0 {
		m.planes = m.planes[:0]
		m.puffs = m.puffs[:0]
		return
	}

	m.cooldown -= dt
	if m.cooldown <= 0 {
		if len(m.planes) < m.cfg.MaxCount {
			m.trySpawn()
		}
		m.cooldown = randRange(m.rng, m.cfg.SpawnMin, m.cfg.SpawnMax)
	}

	for i := range m.planes {
		m.updatePlane(&m.planes[i], dt)
	}
	for i := 0; i < len(m.planes); {
		if m.planes[i].Age >= m.planes[i].MaxAge {
			m.planes[i] = m.planes[len(m.planes)-1]
			m.planes = m.planes[:len(m.planes)-1]
		} else {
			i++
		}
	}

	for i := range m.puffs {
		m.puffs[i].Life -= realDT
	}
	for i := 0; i < len(m.puffs); {
		if m.puffs[i].Life <= 0 {
			m.puffs[i] = m.puffs[len(m.puffs)-1]
			m.puffs = m.puffs[:len(m.puffs)-1]
		} else {
			i++
		}
	}
}

func (m *Airplanes) airportWorld() (float32, float32, bool) {
	airports := m.airports.Get(m.grid)
	if len(airports) == 0 {
		return 0, 0, false
	}
	a := airports[m.rng.Intn(len(airports))]
	wx, wy := render.TileToWorld(float64(a.X), float64(a.Y))
	return wx, wy, true
}

func (m *Airplanes) trySpawn() bool {
	wx, wy, ok := m.airportWorld()
	if !ok {
		return false
	}
	m.nextID++
	m.planes = append(m.planes, Airplane{
		ID:     m.nextID,
		X:      wx,
		Y:      wy,
		Angle:  m.rng.Float64() * 2 * math.Pi,
		State:  planeTakingOff,
		MaxAge: randRange(m.rng, m.cfg.MinAge, m.cfg.MaxAge),
	})
	return true
}

// turnToward eases angle toward target by at most maxStep, shortest way
// around the circle.
func turnToward(angle, target, maxStep float64) float64 {
	diff := math.Mod(target-angle+3*math.Pi, 2*math.Pi) - math.Pi
	if diff > maxStep {
		diff = maxStep
	} else if diff < -maxStep {
		diff = -maxStep
	}
	return angle + diff
}

func (m *Airplanes) updatePlane(p *Airplane, dt float64) {
	p.Age += dt

	speed := m.cfg.Speed
	switch p.State {
	case planeTakingOff:
		// Speed builds with altitude until cruise is reached.
		frac := 0.35 + 0.65*(p.Altitude/m.cfg.CruiseAltitude)
		speed *= frac
		p.Altitude += m.cfg.ClimbRate * dt
		if p.Altitude >= m.cfg.CruiseAltitude {
			p.Altitude = m.cfg.CruiseAltitude
			p.State = planeFlying
		}

	case planeFlying:
		// Gentle persistent bank; direction of the bank flips per plane id.
		turn := m.cfg.TurnRate * dt
		if p.ID%2 == 0 {
			turn = -turn
		}
		p.Angle += turn

		p.puffGap -= dt
		if p.puffGap <= 0 {
			m.puffs = append(m.puffs, contrail{
				X:    p.X,
				Y:    p.Y - float32(p.Altitude),
				Life: m.cfg.ContrailFade,
			})
			p.puffGap = m.cfg.ContrailSpacing
		}

		// Head home with enough life left to descend.
		if p.Age >= p.MaxAge*0.75 {
			p.State = planeLanding
		}

	case planeLanding:
		ax, ay, ok := m.airportWorld()
		if !ok {
			// Nowhere to land: cruise out the rest of the lifetime.
			p.State = planeFlying
			break
		}
		target := math.Atan2(float64(ay-p.Y), float64(ax-p.X))
		p.Angle = turnToward(p.Angle, target, m.cfg.TurnRate*2*dt)

		dist := math.Hypot(float64(ax-p.X), float64(ay-p.Y))
		if dist < p.Altitude*3 {
			p.Altitude -= m.cfg.ClimbRate * dt
			speed *= 0.6
		}
		if p.Altitude <= 0 && dist < 24 {
			p.Age = p.MaxAge // touched down
			return
		}
		if p.Altitude < 0 {
			p.Altitude = 0
		}
	}

	p.X += float32(math.Cos(p.Angle) * speed * dt)
	p.Y += float32(math.Sin(p.Angle) * speed * dt)
}

// Draw emits contrails, ground shadows and plane bodies. Airborne agents skip
// the occlusion test; nothing on the grid is taller than a plane.
func (m *Airplanes) Draw(ctx *render.Context) {
	for i := range m.puffs {
		pf := &m.puffs[i]
		if !ctx.Visible(pf.X, pf.Y, 8) {
			continue
		}
		a := pf.Life / m.cfg.ContrailFade
		if a > 1 {
			a = 1
		}
		ctx.DrawCircle(pf.X, pf.Y, 3, rl.Color{R: 240, G: 240, B: 245, A: uint8(150 * a)})
	}

	for i := range m.planes {
		p := &m.planes[i]
		sy := p.Y - float32(p.Altitude)
		if !ctx.Visible(p.X, sy, 20) && !ctx.Visible(p.X, p.Y, 20) {
			continue
		}
		ctx.DrawCircle(p.X, p.Y, 5, rl.Color{R: 0, G: 0, B: 0, A: 60})
		drawAircraft(ctx, p.X, sy, p.Angle, 10, rl.Color{R: 225, G: 228, B: 235, A: 255})
	}
}

// drawAircraft draws a simple fuselage-plus-wings silhouette oriented along
// the heading.
func drawAircraft(ctx *render.Context, x, y float32, angle float64, size float32, col rl.Color) {
	fx := float32(math.Cos(angle))
	fy := float32(math.Sin(angle))
	// Fuselage.
	ctx.DrawLine(x-fx*size, y-fy*size, x+fx*size, y+fy*size, 3, col)
	// Wings, perpendicular to travel.
	ctx.DrawLine(x-(-fy)*size*0.8, y-fx*size*0.8, x+(-fy)*size*0.8, y+fx*size*0.8, 2, col)
}
