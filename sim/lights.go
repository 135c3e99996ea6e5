package sim

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/render"
)

// LightState is the rendered signal color for one approach axis.
type LightState int

const (
	Red LightState = iota
	Yellow
	Green
)

func (s LightState) String() string {
	switch s {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Phase cycle per intersection: NS green, NS yellow, EW green, EW yellow.
// Red for an axis is implied whenever the other axis holds the cycle.
const (
	phaseNSGreen = iota
	phaseNSYellow
	phaseEWGreen
	phaseEWYellow
	numPhases
)

// intersection is one controlled junction's phase machine. Durations are
// fixed at creation; the timer counts down to the next phase.
type intersection struct {
	junction  grid.Junction
	phase     int
	timer     float64
	durations [numPhases]float64
}

func (it *intersection) advance(dt float64) {
	it.timer -= dt
	for it.timer <= 0 {
		it.phase = (it.phase + 1) % numPhases
		it.timer += it.durations[it.phase]
	}
}

// stateFor reports the signal shown to traffic traveling along dir's axis.
func (it *intersection) stateFor(dir grid.Direction) LightState {
	ns := !dir.Horizontal()
	switch it.phase {
	case phaseNSGreen:
		if ns {
			return Green
		}
	case phaseNSYellow:
		if ns {
			return Yellow
		}
	case phaseEWGreen:
		if !ns {
			return Green
		}
	case phaseEWYellow:
		if !ns {
			return Yellow
		}
	}
	return Red
}

// Lights owns every controlled intersection. Junctions are re-enumerated
// from the grid whenever its version changes; intersections that persist
// across an edit keep their timers, vanished ones are simply not carried
// over. Lights are advisory fixtures: vehicles do not stop on red.
type Lights struct {
	grid        *grid.Grid
	cfg         *config.LightsConfig
	rng         *rand.Rand
	junctions   *grid.Cache[[]grid.Point]
	lastVersion int64
	active      map[grid.Point]*intersection
}

// NewLights creates the controller. The first Update populates it.
func NewLights(g *grid.Grid, cfg *config.LightsConfig, rng *rand.Rand) *Lights {
	return &Lights{
		grid: g,
		cfg:  cfg,
		rng:  rng,
		junctions: grid.NewTileListCache(func(b grid.Building) bool {
			return b.Type.IsRoad()
		}),
		lastVersion: -1,
		active:      map[grid.Point]*intersection{},
	}
}

// Count returns the number of controlled intersections.
func (m *Lights) Count() int { return len(m.active) }

// newIntersection builds the phase machine for a junction, with a randomized
// green hold. A T junction's through axis takes the larger green share.
func (m *Lights) newIntersection(x, y int, j grid.Junction) *intersection {
	green := randRange(m.rng, m.cfg.GreenMin, m.cfg.GreenMax)
	nsGreen, ewGreen := green, green
	if j == grid.JunctionT {
		total := green * 2
		through := total * m.cfg.ThroughShare
		if grid.ThroughAxisHorizontal(m.grid, x, y, grid.RoadSurface) {
			ewGreen, nsGreen = through, total-through
		} else {
			nsGreen, ewGreen = through, total-through
		}
	}

	it := &intersection{junction: j}
	it.durations[phaseNSGreen] = nsGreen
	it.durations[phaseNSYellow] = m.cfg.Yellow
	it.durations[phaseEWGreen] = ewGreen
	it.durations[phaseEWYellow] = m.cfg.Yellow
	it.phase = m.rng.Intn(numPhases)
	it.timer = randRange(m.rng, 0, it.durations[it.phase])
	if it.timer <= 0 {
		it.timer = it.durations[it.phase]
	}
	return it
}

// refresh re-enumerates controlled junctions after a grid edit.
func (m *Lights) refresh() {
	if m.grid.Version() == m.lastVersion {
		return
	}
	m.lastVersion = m.grid.Version()

	next := make(map[grid.Point]*intersection, len(m.active))
	for _, p := range m.junctions.Get(m.grid) {
		j := grid.Classify(m.grid, p.X, p.Y, grid.RoadSurface)
		if j != grid.JunctionT && j != grid.JunctionCross {
			continue
		}
		if prev, ok := m.active[p]; ok && prev.junction == j {
			next[p] = prev
			continue
		}
		next[p] = m.newIntersection(p.X, p.Y, j)
	}
	m.active = next
}

// Update advances every phase machine. Callers pass clamped real frame time,
// not speed-scaled simulation time, so signals keep cycling while paused.
func (m *Lights) Update(realDT float64) {
	if m.grid.Size() <= 0 {
		m.active = map[grid.Point]*intersection{}
		m.lastVersion = m.grid.Version()
		return
	}
	m.refresh()
	for _, it := range m.active {
		it.advance(realDT)
	}
}

// StateAt reports the signal for travel along dir at a junction, and whether
// the tile is controlled at all.
func (m *Lights) StateAt(x, y int, dir grid.Direction) (LightState, bool) {
	it, ok := m.active[grid.Point{X: x, Y: y}]
	if !ok {
		return Red, false
	}
	return it.stateFor(dir), true
}

func lightColor(s LightState) rl.Color {
	switch s {
	case Green:
		return rl.Color{R: 60, G: 200, B: 70, A: 255}
	case Yellow:
		return rl.Color{R: 235, G: 200, B: 40, A: 255}
	default:
		return rl.Color{R: 220, G: 50, B: 40, A: 255}
	}
}

// Draw emits one fixture per visible intersection: a pole dot per axis
// showing that axis's signal.
func (m *Lights) Draw(ctx *render.Context) {
	for p, it := range m.active {
		wx, wy := render.TileToWorld(float64(p.X), float64(p.Y))
		if !ctx.Visible(wx, wy, render.TileHalfW) {
			continue
		}
		if render.Occluded(m.grid, p.X, p.Y) {
			continue
		}
		// NS fixture on the tile's left point, EW on the right.
		ctx.DrawCircle(wx-render.TileHalfW*0.55, wy-6, 2, lightColor(it.stateFor(grid.North)))
		ctx.DrawCircle(wx+render.TileHalfW*0.55, wy-6, 2, lightColor(it.stateFor(grid.East)))
		ctx.DrawLine(wx-render.TileHalfW*0.55, wy-4, wx-render.TileHalfW*0.55, wy, 1, rl.Color{R: 60, G: 60, B: 60, A: 255})
		ctx.DrawLine(wx+render.TileHalfW*0.55, wy-4, wx+render.TileHalfW*0.55, wy, 1, rl.Color{R: 60, G: 60, B: 60, A: 255})
	}
}
