// Package game wires the grid, simulation, camera and toolbar into a
// runnable host, graphical or headless.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/camera"
	"minipolis/config"
	"minipolis/grid"
	"minipolis/render"
	"minipolis/sim"
	"minipolis/telemetry"
	"minipolis/ui"
)

// Options configures a run.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// headlessDT is the fixed step used without a render clock.
const headlessDT = 1.0 / 60.0

// Game holds the complete host state.
type Game struct {
	cfg     *config.Config
	grid    *grid.Grid
	sim     *sim.Sim
	cam     *camera.Camera
	ctx     *render.Context
	toolbar *ui.Toolbar
	rng     *rand.Rand

	perf     *telemetry.PerfCollector
	stats    *telemetry.Collector
	output   *telemetry.OutputManager
	logStats bool

	tick    int32
	uiHover bool // mouse was over the toolbar last frame
}

// NewGame builds a game from the global config and the given options,
// generating a seeded demo city to run traffic over.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	world := grid.New(cfg.World.GridSize)
	GenerateCity(world, rng)

	s := sim.New(world, cfg, opts.Seed)
	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	s.SetPerf(perf)

	cx, cy := render.TileToWorld(float64(cfg.World.GridSize)/2, float64(cfg.World.GridSize)/2)
	cam := camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), cx, cy)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("output disabled", "error", err)
		output = nil
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	g := &Game{
		cfg:      cfg,
		grid:     world,
		sim:      s,
		cam:      cam,
		ctx:      render.NewContext(cam),
		toolbar:  ui.NewToolbar(),
		rng:      rng,
		perf:     perf,
		stats:    telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		output:   output,
		logStats: opts.LogStats,
	}

	slog.Info("city generated",
		"size", cfg.World.GridSize,
		"seed", opts.Seed,
		"version", world.Version(),
	)
	return g
}

// Tick returns the number of completed update steps.
func (g *Game) Tick() int32 { return g.tick }

// Update runs one interactive frame step: input, simulation, telemetry.
func (g *Game) Update() {
	g.perf.StartFrame()
	dt := float64(rl.GetFrameTime())
	g.handleInput(dt)
	g.step(dt)
}

// UpdateHeadless runs one fixed step without raylib.
func (g *Game) UpdateHeadless() {
	g.perf.StartFrame()
	g.step(headlessDT)
	g.perf.EndFrame()
}

func (g *Game) step(rawDT float64) {
	g.sim.Update(rawDT)
	g.tick++

	simDT := rawDT
	if simDT > g.cfg.World.MaxDelta {
		simDT = g.cfg.World.MaxDelta
	}
	g.stats.Record(simDT*g.sim.Multiplier(), g.sim.Census())
	if g.stats.ShouldFlush() {
		g.flushStats()
	}
}

func (g *Game) flushStats() {
	ws := g.stats.Flush()
	ps := g.perf.Stats()
	if g.logStats {
		ws.LogStats()
		ps.LogStats()
	}
	if err := g.output.WriteTelemetry(ws); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
	if err := g.output.WritePerf(ps, ws.WindowEndTick); err != nil {
		slog.Error("perf write failed", "error", err)
	}
}

// Draw renders the frame: tiles back to front, agents, then the toolbar.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 24, G: 26, B: 32, A: 255})

	g.drawWorld()
	g.sim.Draw(g.ctx)

	c := g.sim.Census()
	status := fmt.Sprintf("cars %d  peds %d  trains %d  air %d  heli %d  emg %d  calls %d",
		c.Cars, c.Pedestrians, c.Trains, c.Airplanes, c.Helicopters, c.Emergency, c.Incidents)
	newSpeed, hover := g.toolbar.Draw(g.cam.ViewportW, g.sim.Speed, status)
	g.sim.Speed = newSpeed
	g.uiHover = hover

	rl.EndDrawing()
	g.perf.EndFrame()
}

// Unload flushes run output.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
