package sim

import (
	"math/rand"
	"testing"

	"minipolis/config"
	"minipolis/grid"
)

func testLightsConfig() *config.LightsConfig {
	return &config.LightsConfig{
		GreenMin:     2.0,
		GreenMax:     3.0,
		Yellow:       1.0,
		ThroughShare: 0.7,
	}
}

// crossGrid builds a plus-shaped road meeting at (3,3).
func crossGrid() *grid.Grid {
	g := grid.New(7)
	for i := 1; i <= 5; i++ {
		g.SetTile(i, 3, grid.Building{Type: grid.Road})
		g.SetTile(3, i, grid.Building{Type: grid.Road})
	}
	return g
}

func TestCrossIntersectionControlled(t *testing.T) {
	g := crossGrid()
	m := NewLights(g, testLightsConfig(), rand.New(rand.NewSource(1)))
	m.Update(0.01)

	if m.Count() != 1 {
		t.Fatalf("controlled intersections = %d, want 1", m.Count())
	}
	if _, ok := m.StateAt(3, 3, grid.North); !ok {
		t.Error("cross center not controlled")
	}
	if _, ok := m.StateAt(1, 3, grid.North); ok {
		t.Error("straight road tile reported as controlled")
	}
}

func TestCrossPhaseExclusivity(t *testing.T) {
	g := crossGrid()
	m := NewLights(g, testLightsConfig(), rand.New(rand.NewSource(2)))

	for i := 0; i < 3000; i++ {
		m.Update(0.016)
		ns, _ := m.StateAt(3, 3, grid.North)
		ew, _ := m.StateAt(3, 3, grid.East)
		if ns == Green && ew == Green {
			t.Fatalf("both axes green at step %d", i)
		}
		// Opposing approaches on one axis always agree.
		s, _ := m.StateAt(3, 3, grid.South)
		if ns != s {
			t.Fatalf("north and south approaches disagree: %v vs %v", ns, s)
		}
	}
}

func TestLightCyclesThroughAllStates(t *testing.T) {
	g := crossGrid()
	m := NewLights(g, testLightsConfig(), rand.New(rand.NewSource(3)))

	seen := map[LightState]bool{}
	for i := 0; i < 2000; i++ {
		m.Update(0.016)
		ns, _ := m.StateAt(3, 3, grid.North)
		seen[ns] = true
	}
	for _, want := range []LightState{Red, Yellow, Green} {
		if !seen[want] {
			t.Errorf("north axis never showed %v over a full cycle", want)
		}
	}
}

func TestTJunctionThroughAxisGetsLongerGreen(t *testing.T) {
	// East/west through road with a southward stub.
	g := grid.New(7)
	for x := 1; x <= 5; x++ {
		g.SetTile(x, 3, grid.Building{Type: grid.Road})
	}
	g.SetTile(3, 4, grid.Building{Type: grid.Road})

	m := NewLights(g, testLightsConfig(), rand.New(rand.NewSource(4)))
	m.Update(0.01)
	it, ok := m.active[grid.Point{X: 3, Y: 3}]
	if !ok {
		t.Fatal("T junction not controlled")
	}
	if it.junction != grid.JunctionT {
		t.Fatalf("classified as %v, want T", it.junction)
	}
	if it.durations[phaseEWGreen] <= it.durations[phaseNSGreen] {
		t.Errorf("through axis green %f not longer than stub green %f",
			it.durations[phaseEWGreen], it.durations[phaseNSGreen])
	}
}

func TestLightsSurviveUnrelatedEdits(t *testing.T) {
	g := crossGrid()
	m := NewLights(g, testLightsConfig(), rand.New(rand.NewSource(5)))
	m.Update(0.01)

	before := m.active[grid.Point{X: 3, Y: 3}]
	g.SetTile(6, 6, grid.Building{Type: grid.Residential})
	m.Update(0.01)
	after := m.active[grid.Point{X: 3, Y: 3}]

	if before != after {
		t.Error("intersection timer reset by an edit that kept its topology")
	}
}

func TestLightsVanishWhenIntersectionRemoved(t *testing.T) {
	g := crossGrid()
	m := NewLights(g, testLightsConfig(), rand.New(rand.NewSource(6)))
	m.Update(0.01)
	if m.Count() != 1 {
		t.Fatal("expected one controlled intersection")
	}

	// Remove the south arm: the center degrades to a T, then remove two
	// more arms to kill the junction entirely.
	g.SetTile(3, 4, grid.Building{Type: grid.Grass})
	g.SetTile(3, 5, grid.Building{Type: grid.Grass})
	m.Update(0.01)
	it := m.active[grid.Point{X: 3, Y: 3}]
	if it == nil || it.junction != grid.JunctionT {
		t.Fatal("cross did not degrade to a controlled T")
	}

	g.SetTile(3, 1, grid.Building{Type: grid.Grass})
	g.SetTile(3, 2, grid.Building{Type: grid.Grass})
	m.Update(0.01)
	if m.Count() != 0 {
		t.Errorf("controlled intersections = %d after road removal, want 0", m.Count())
	}
}
