package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.World.GridSize != 64 {
		t.Errorf("GridSize = %d, want 64", cfg.World.GridSize)
	}
	if cfg.World.MaxDelta != 0.05 {
		t.Errorf("MaxDelta = %f, want 0.05", cfg.World.MaxDelta)
	}
	if cfg.Cars.TilesPerCar <= 0 {
		t.Error("cars config missing from defaults")
	}
	if cfg.Lights.GreenMax < cfg.Lights.GreenMin {
		t.Error("light green range inverted in defaults")
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	user := "cars:\n  speed: 9.5\nworld:\n  grid_size: 32\n"
	if err := os.WriteFile(path, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Cars.Speed != 9.5 {
		t.Errorf("Cars.Speed = %f, want user override 9.5", cfg.Cars.Speed)
	}
	if cfg.World.GridSize != 32 {
		t.Errorf("GridSize = %d, want user override 32", cfg.World.GridSize)
	}
	// Untouched sections keep their defaults.
	if cfg.Trains.MinRailTiles != 12 {
		t.Errorf("Trains.MinRailTiles = %d, want default 12", cfg.Trains.MinRailTiles)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestFloorsBackfillZeroedValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zeroed.yaml")
	user := "world:\n  max_delta: 0\nlights:\n  yellow: 0\n  through_share: 2.0\n"
	if err := os.WriteFile(path, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.MaxDelta != 0.05 {
		t.Errorf("MaxDelta floor not applied, got %f", cfg.World.MaxDelta)
	}
	if cfg.Lights.Yellow != 1.5 {
		t.Errorf("Yellow floor not applied, got %f", cfg.Lights.Yellow)
	}
	if cfg.Lights.ThroughShare != 0.7 {
		t.Errorf("ThroughShare out of range not reset, got %f", cfg.Lights.ThroughShare)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Cars.MaxCount = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if back.Cars.MaxCount != 7 {
		t.Errorf("MaxCount = %d after round trip, want 7", back.Cars.MaxCount)
	}
}
