// Package config provides configuration loading and access for the city
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Cars        CarsConfig        `yaml:"cars"`
	Pedestrians PedestriansConfig `yaml:"pedestrians"`
	Trains      TrainsConfig      `yaml:"trains"`
	Airplanes   AirplanesConfig   `yaml:"airplanes"`
	Helicopters HelicoptersConfig `yaml:"helicopters"`
	Emergency   EmergencyConfig   `yaml:"emergency"`
	Lights      LightsConfig      `yaml:"lights"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds grid dimensions and frame timing limits.
type WorldConfig struct {
	GridSize int `yaml:"grid_size"`
	// MaxDelta clamps per-frame delta time in seconds so a long pause
	// (window dragging, backgrounded tab) cannot teleport agents.
	MaxDelta float64 `yaml:"max_delta"`
}

// SpawnTimerConfig holds the shared spawn countdown shape: after a spawn
// attempt the timer resets to a randomized interval, shorter on success so
// under-capacity networks fill quickly, longer on failure to avoid
// busy-looping when no valid spawn point exists.
type SpawnTimerConfig struct {
	SuccessMin float64 `yaml:"success_min"`
	SuccessMax float64 `yaml:"success_max"`
	FailureMin float64 `yaml:"failure_min"`
	FailureMax float64 `yaml:"failure_max"`
	Candidates int     `yaml:"candidates"` // random tiles probed per attempt
}

// CarsConfig holds car manager parameters.
type CarsConfig struct {
	TilesPerCar    int              `yaml:"tiles_per_car"` // capacity = roadTiles / this
	MaxCount       int              `yaml:"max_count"`
	Speed          float64          `yaml:"speed"` // cells per second
	MinAge         float64          `yaml:"min_age"`
	MaxAge         float64          `yaml:"max_age"`
	RelocateRadius int              `yaml:"relocate_radius"`
	Spawn          SpawnTimerConfig `yaml:"spawn"`
}

// PedestriansConfig holds pedestrian manager parameters.
type PedestriansConfig struct {
	ResidentsPerPed int              `yaml:"residents_per_ped"` // capacity = population / this
	MaxCount        int              `yaml:"max_count"`
	Speed           float64          `yaml:"speed"`
	MinAge          float64          `yaml:"min_age"`
	MaxAge          float64          `yaml:"max_age"`
	Spawn           SpawnTimerConfig `yaml:"spawn"`
}

// TrainsConfig holds train manager parameters.
type TrainsConfig struct {
	MinRailTiles  int              `yaml:"min_rail_tiles"` // no trains below this network size
	TilesPerTrain int              `yaml:"tiles_per_train"`
	MaxCount      int              `yaml:"max_count"`
	Speed         float64          `yaml:"speed"`
	MinAge        float64          `yaml:"min_age"`
	MaxAge        float64          `yaml:"max_age"`
	Spawn         SpawnTimerConfig `yaml:"spawn"`
}

// AirplanesConfig holds airplane manager parameters.
type AirplanesConfig struct {
	MaxCount        int     `yaml:"max_count"`
	Speed           float64 `yaml:"speed"` // world units per second
	CruiseAltitude  float64 `yaml:"cruise_altitude"`
	ClimbRate       float64 `yaml:"climb_rate"`
	TurnRate        float64 `yaml:"turn_rate"` // radians per second while cruising
	MinAge          float64 `yaml:"min_age"`
	MaxAge          float64 `yaml:"max_age"`
	SpawnMin        float64 `yaml:"spawn_min"`
	SpawnMax        float64 `yaml:"spawn_max"`
	ContrailSpacing float64 `yaml:"contrail_spacing"` // seconds between puffs
	ContrailFade    float64 `yaml:"contrail_fade"`    // real-time seconds to fade
}

// HelicoptersConfig holds helicopter manager parameters.
type HelicoptersConfig struct {
	PopulationPerHeli int     `yaml:"population_per_heli"`
	MaxCount          int     `yaml:"max_count"`
	Speed             float64 `yaml:"speed"`
	CruiseAltitude    float64 `yaml:"cruise_altitude"`
	ClimbRate         float64 `yaml:"climb_rate"`
	MinAge            float64 `yaml:"min_age"`
	MaxAge            float64 `yaml:"max_age"`
	SpawnMin          float64 `yaml:"spawn_min"`
	SpawnMax          float64 `yaml:"spawn_max"`
}

// EmergencyConfig holds emergency vehicle parameters.
type EmergencyConfig struct {
	Speed          float64 `yaml:"speed"`      // cells per second, faster than cars
	SceneHold      float64 `yaml:"scene_hold"` // on-scene seconds before returning
	RelocateRadius int     `yaml:"relocate_radius"`
	MaxActive      int     `yaml:"max_active"`
}

// LightsConfig holds traffic light phase durations in seconds.
type LightsConfig struct {
	GreenMin     float64 `yaml:"green_min"`
	GreenMax     float64 `yaml:"green_max"`
	Yellow       float64 `yaml:"yellow"`
	ThroughShare float64 `yaml:"through_share"` // green share for a T's through axis
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyFloors()
	return cfg, nil
}

// applyFloors backfills values a malformed user config could zero out.
func (c *Config) applyFloors() {
	if c.World.MaxDelta <= 0 {
		c.World.MaxDelta = 0.05
	}
	if c.Cars.Spawn.Candidates <= 0 {
		c.Cars.Spawn.Candidates = 5
	}
	if c.Pedestrians.Spawn.Candidates <= 0 {
		c.Pedestrians.Spawn.Candidates = 5
	}
	if c.Trains.Spawn.Candidates <= 0 {
		c.Trains.Spawn.Candidates = 5
	}
	if c.Lights.Yellow <= 0 {
		c.Lights.Yellow = 1.5
	}
	if c.Lights.GreenMin <= 0 {
		c.Lights.GreenMin = 5
	}
	if c.Lights.GreenMax < c.Lights.GreenMin {
		c.Lights.GreenMax = c.Lights.GreenMin
	}
	if c.Lights.ThroughShare <= 0 || c.Lights.ThroughShare >= 1 {
		c.Lights.ThroughShare = 0.7
	}
	if c.Telemetry.PerfCollectorWindow <= 0 {
		c.Telemetry.PerfCollectorWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
