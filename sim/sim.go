// Package sim owns the traffic and transit simulation: one lifecycle manager
// per agent kind, the traffic-light controller, and the shared incident
// registry, all stepped once per frame in a fixed order.
package sim

import (
	"math/rand"

	"minipolis/config"
	"minipolis/grid"
	"minipolis/render"
	"minipolis/telemetry"
)

// speedMultipliers maps the global speed setting to a time scale:
// paused, normal, fast, very fast.
var speedMultipliers = [4]float64{0, 1, 2, 4}

// Sim steps every manager against a shared grid. Managers never read each
// other's agents; the grid, the light lookup and the incident registry are
// the only shared state.
type Sim struct {
	Grid  *grid.Grid
	Speed int // 0 paused .. 3 very fast

	Cars        *Cars
	Pedestrians *Pedestrians
	Trains      *Trains
	Airplanes   *Airplanes
	Helicopters *Helicopters
	Emergency   *Emergency
	Lights      *Lights
	Incidents   *Incidents

	cfg  *config.Config
	perf *telemetry.PerfCollector
}

// New builds a simulation over g. The seed fixes all spawn and routing
// randomness for a run.
func New(g *grid.Grid, cfg *config.Config, seed int64) *Sim {
	rng := rand.New(rand.NewSource(seed))
	incidents := NewIncidents()

	return &Sim{
		Grid:        g,
		Speed:       1,
		Cars:        NewCars(g, &cfg.Cars, rng),
		Pedestrians: NewPedestrians(g, &cfg.Pedestrians, rng),
		Trains:      NewTrains(g, &cfg.Trains, rng),
		Airplanes:   NewAirplanes(g, &cfg.Airplanes, rng),
		Helicopters: NewHelicopters(g, &cfg.Helicopters, rng),
		Emergency:   NewEmergency(g, &cfg.Emergency, rng, incidents),
		Lights:      NewLights(g, &cfg.Lights, rng),
		Incidents:   incidents,
		cfg:         cfg,
	}
}

// SetPerf attaches an optional per-phase timing collector. The caller owns
// StartFrame/EndFrame; the sim marks phase boundaries.
func (s *Sim) SetPerf(p *telemetry.PerfCollector) { s.perf = p }

func (s *Sim) phase(name string) {
	if s.perf != nil {
		s.perf.StartPhase(name)
	}
}

// Multiplier returns the time scale for the current speed setting.
func (s *Sim) Multiplier() float64 {
	if s.Speed < 0 || s.Speed >= len(speedMultipliers) {
		return 1
	}
	return speedMultipliers[s.Speed]
}

// Update steps the whole simulation by one frame. rawDT is wall-clock frame
// time in seconds; it is clamped so a long stall cannot teleport agents.
// Everything physical scales with the speed multiplier; light phases and
// contrail decay run on clamped real time so they keep moving while paused.
func (s *Sim) Update(rawDT float64) {
	realDT := rawDT
	if realDT > s.cfg.World.MaxDelta {
		realDT = s.cfg.World.MaxDelta
	}
	if realDT < 0 {
		realDT = 0
	}
	dt := realDT * s.Multiplier()

	s.phase(telemetry.PhaseCars)
	s.Cars.Update(dt)
	s.phase(telemetry.PhasePedestrians)
	s.Pedestrians.Update(dt)
	s.phase(telemetry.PhaseTrains)
	s.Trains.Update(dt)
	s.phase(telemetry.PhaseAirplanes)
	s.Airplanes.Update(dt, realDT)
	s.phase(telemetry.PhaseHelicopters)
	s.Helicopters.Update(dt)
	s.phase(telemetry.PhaseEmergency)
	s.Emergency.Update(dt)
	s.phase(telemetry.PhaseLights)
	s.Lights.Update(realDT)
}

// Draw emits every manager's agents back to front: ground traffic first,
// then fixtures, then everything airborne.
func (s *Sim) Draw(ctx *render.Context) {
	s.phase(telemetry.PhaseDraw)
	s.Cars.Draw(ctx)
	s.Pedestrians.Draw(ctx)
	s.Emergency.Draw(ctx)
	s.Trains.Draw(ctx)
	s.Lights.Draw(ctx)
	s.Helicopters.Draw(ctx)
	s.Airplanes.Draw(ctx)
}

// Dispatch sends an emergency vehicle from a station tile to a target tile,
// bypassing the incident registry.
func (s *Sim) Dispatch(kind EmergencyKind, station, target grid.Point) bool {
	return s.Emergency.Dispatch(kind, station, target)
}

// Report reports a new incident for the responders to drain.
func (s *Sim) Report(kind EmergencyKind, tile grid.Point) uint64 {
	return s.Incidents.Add(kind, tile)
}

// Census samples the current population counts for telemetry.
func (s *Sim) Census() telemetry.Counts {
	return telemetry.Counts{
		Cars:          s.Cars.Count(),
		Pedestrians:   s.Pedestrians.Count(),
		Trains:        s.Trains.Count(),
		Airplanes:     s.Airplanes.Count(),
		Helicopters:   s.Helicopters.Count(),
		Emergency:     s.Emergency.Count(),
		Incidents:     s.Incidents.Count(),
		Intersections: s.Lights.Count(),
	}
}
