package sim

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/render"
)

type heliState int

const (
	heliTakingOff heliState = iota
	heliFlying
	heliLanding
)

// Helicopter is a free-space agent that rises from a random built-up tile,
// orbits a series of random targets, and sets down when its lifetime runs
// out.
type Helicopter struct {
	ID       uint64
	X, Y     float32
	Angle    float64
	Altitude float64
	State    heliState
	TargetX  float32
	TargetY  float32
	Age      float64
	MaxAge   float64
	rotor    float64
}

// Helicopters manages helicopter traffic. Spawning is gated by total city
// population rather than network size.
type Helicopters struct {
	grid       *grid.Grid
	cfg        *config.HelicoptersConfig
	rng        *rand.Rand
	population *grid.Cache[int]
	pads       *grid.Cache[[]grid.Point]
	cooldown   float64
	nextID     uint64
	helis      []Helicopter
}

// NewHelicopters creates the helicopter manager.
func NewHelicopters(g *grid.Grid, cfg *config.HelicoptersConfig, rng *rand.Rand) *Helicopters {
	return &Helicopters{
		grid:       g,
		cfg:        cfg,
		rng:        rng,
		population: grid.NewPopulationCache(),
		pads: grid.NewTileListCache(func(b grid.Building) bool {
			return b.Powered && (b.Type == grid.Commercial || b.Type == grid.Hospital || b.Type == grid.Airport)
		}),
		cooldown: randRange(rng, cfg.SpawnMin, cfg.SpawnMax),
	}
}

// Count returns the live helicopter population.
func (m *Helicopters) Count() int { return len(m.helis) }

func (m *Helicopters) capacity() int {
	cap := m.population.Get(m.grid) / m.cfg.PopulationPerHeli
	if cap > m.cfg.MaxCount {
		cap = m.cfg.MaxCount
	}
	return cap
}

// Update advances every helicopter by dt of simulation time.
func (m *Helicopters) Update(dt float64) {
	if m.grid.Size() <= 0 {
		m.helis = m.helis[:0]
		return
	}

	m.cooldown -= dt
	if m.cooldown <= 0 {
		if len(m.helis) < m.capacity() {
			m.trySpawn()
		}
		m.cooldown = randRange(m.rng, m.cfg.SpawnMin, m.cfg.SpawnMax)
	}

	for i := range m.helis {
		m.updateHeli(&m.helis[i], dt)
	}
	for i := 0; i < len(m.helis); {
		if m.helis[i].Age >= m.helis[i].MaxAge {
			m.helis[i] = m.helis[len(m.helis)-1]
			m.helis = m.helis[:len(m.helis)-1]
		} else {
			i++
		}
	}
}

// randomTarget picks a wander destination over the built city.
func (m *Helicopters) randomTarget() (float32, float32) {
	size := m.grid.Size()
	tx := m.rng.Intn(size)
	ty := m.rng.Intn(size)
	return render.TileToWorld(float64(tx), float64(ty))
}

func (m *Helicopters) trySpawn() bool {
	pads := m.pads.Get(m.grid)
	if len(pads) == 0 {
		return false
	}
	pad := pads[m.rng.Intn(len(pads))]
	wx, wy := render.TileToWorld(float64(pad.X), float64(pad.Y))
	tx, ty := m.randomTarget()

	m.nextID++
	m.helis = append(m.helis, Helicopter{
		ID:      m.nextID,
		X:       wx,
		Y:       wy,
		Angle:   m.rng.Float64() * 2 * math.Pi,
		State:   heliTakingOff,
		TargetX: tx,
		TargetY: ty,
		MaxAge:  randRange(m.rng, m.cfg.MinAge, m.cfg.MaxAge),
	})
	return true
}

func (m *Helicopters) updateHeli(h *Helicopter, dt float64) {
	h.Age += dt
	h.rotor += dt * 20

	switch h.State {
	case heliTakingOff:
		h.Altitude += m.cfg.ClimbRate * dt
		if h.Altitude >= m.cfg.CruiseAltitude {
			h.Altitude = m.cfg.CruiseAltitude
			h.State = heliFlying
		}

	case heliFlying:
		target := math.Atan2(float64(h.TargetY-h.Y), float64(h.TargetX-h.X))
		h.Angle = turnToward(h.Angle, target, 1.2*dt)
		h.X += float32(math.Cos(h.Angle) * m.cfg.Speed * dt)
		h.Y += float32(math.Sin(h.Angle) * m.cfg.Speed * dt)

		if math.Hypot(float64(h.TargetX-h.X), float64(h.TargetY-h.Y)) < 16 {
			h.TargetX, h.TargetY = m.randomTarget()
		}
		if h.Age >= h.MaxAge*0.85 {
			h.State = heliLanding
		}

	case heliLanding:
		h.Altitude -= m.cfg.ClimbRate * dt
		if h.Altitude <= 0 {
			h.Age = h.MaxAge // set down
		}
	}
}

// Draw emits a shadow, body and spinning rotor per helicopter. Airborne, so
// the occlusion test is skipped.
func (m *Helicopters) Draw(ctx *render.Context) {
	body := rl.Color{R: 200, G: 170, B: 50, A: 255}
	for i := range m.helis {
		h := &m.helis[i]
		sy := h.Y - float32(h.Altitude)
		if !ctx.Visible(h.X, sy, 16) && !ctx.Visible(h.X, h.Y, 16) {
			continue
		}
		ctx.DrawCircle(h.X, h.Y, 4, rl.Color{R: 0, G: 0, B: 0, A: 60})
		ctx.DrawCircle(h.X, sy, 4, body)

		// Rotor blades spin in real units, drawn as a rotating cross.
		rx := float32(math.Cos(h.rotor)) * 8
		ry := float32(math.Sin(h.rotor)) * 8
		blade := rl.Color{R: 60, G: 60, B: 65, A: 220}
		ctx.DrawLine(h.X-rx, sy-ry, h.X+rx, sy+ry, 1.5, blade)
		ctx.DrawLine(h.X+ry, sy-rx, h.X-ry, sy+rx, 1.5, blade)
	}
}
