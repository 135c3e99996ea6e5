package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Counts is a point-in-time census of the simulation, sampled once per frame.
type Counts struct {
	Cars          int
	Pedestrians   int
	Trains        int
	Airplanes     int
	Helicopters   int
	Emergency     int
	Incidents     int
	Intersections int
}

// Total sums the moving agents (incidents and intersections are not agents).
func (c Counts) Total() int {
	return c.Cars + c.Pedestrians + c.Trains + c.Airplanes + c.Helicopters + c.Emergency
}

// WindowStats holds aggregated traffic statistics for one time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Population counts at window end
	Cars          int `csv:"cars"`
	Pedestrians   int `csv:"pedestrians"`
	Trains        int `csv:"trains"`
	Airplanes     int `csv:"airplanes"`
	Helicopters   int `csv:"helicopters"`
	Emergency     int `csv:"emergency"`
	Incidents     int `csv:"incidents"`
	Intersections int `csv:"intersections"`

	// Agent total over the window
	AgentsMean float64 `csv:"agents_mean"`
	AgentsStd  float64 `csv:"agents_std"`

	// Car population over the window
	CarsMean float64 `csv:"cars_mean"`
	CarsStd  float64 `csv:"cars_std"`
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"cars", s.Cars,
		"pedestrians", s.Pedestrians,
		"trains", s.Trains,
		"airplanes", s.Airplanes,
		"helicopters", s.Helicopters,
		"emergency", s.Emergency,
		"incidents", s.Incidents,
		"intersections", s.Intersections,
		"agents_mean", s.AgentsMean,
		"agents_std", s.AgentsStd,
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("cars", s.Cars),
		slog.Int("pedestrians", s.Pedestrians),
		slog.Int("trains", s.Trains),
		slog.Int("airplanes", s.Airplanes),
		slog.Int("helicopters", s.Helicopters),
		slog.Int("emergency", s.Emergency),
		slog.Int("incidents", s.Incidents),
		slog.Int("intersections", s.Intersections),
		slog.Float64("agents_mean", s.AgentsMean),
		slog.Float64("agents_std", s.AgentsStd),
		slog.Float64("cars_mean", s.CarsMean),
		slog.Float64("cars_std", s.CarsStd),
	)
}

// Collector accumulates per-frame census samples and produces WindowStats
// when a window's worth of simulation time has elapsed.
type Collector struct {
	windowSec float64

	tick    int32
	simTime float64
	elapsed float64

	last   Counts
	agents []float64
	cars   []float64
}

// NewCollector creates a stats collector with the given window length in
// simulation seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &Collector{windowSec: windowSec}
}

// Record adds one frame's census.
func (c *Collector) Record(dt float64, counts Counts) {
	c.tick++
	c.simTime += dt
	c.elapsed += dt
	c.last = counts
	c.agents = append(c.agents, float64(counts.Total()))
	c.cars = append(c.cars, float64(counts.Cars))
}

// ShouldFlush reports whether a full window has elapsed.
func (c *Collector) ShouldFlush() bool {
	return c.elapsed >= c.windowSec
}

// Flush produces the window's stats and resets for the next window.
func (c *Collector) Flush() WindowStats {
	s := WindowStats{
		WindowEndTick: c.tick,
		SimTimeSec:    c.simTime,
		Cars:          c.last.Cars,
		Pedestrians:   c.last.Pedestrians,
		Trains:        c.last.Trains,
		Airplanes:     c.last.Airplanes,
		Helicopters:   c.last.Helicopters,
		Emergency:     c.last.Emergency,
		Incidents:     c.last.Incidents,
		Intersections: c.last.Intersections,
	}
	if len(c.agents) > 0 {
		s.AgentsMean, s.AgentsStd = meanStd(c.agents)
		s.CarsMean, s.CarsStd = meanStd(c.cars)
	}

	c.elapsed = 0
	c.agents = c.agents[:0]
	c.cars = c.cars[:0]
	return s
}

func meanStd(xs []float64) (float64, float64) {
	mean := stat.Mean(xs, nil)
	if len(xs) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(xs, nil)
}
