package telemetry

import (
	"math"
	"testing"
)

func TestCollectorFlushAfterWindow(t *testing.T) {
	c := NewCollector(1.0)

	for i := 0; i < 9; i++ {
		c.Record(0.1, Counts{Cars: 10})
		if c.ShouldFlush() {
			t.Fatalf("flushed early at sample %d", i)
		}
	}
	c.Record(0.1, Counts{Cars: 10})
	if !c.ShouldFlush() {
		t.Fatal("expected flush after a full window")
	}

	s := c.Flush()
	if s.Cars != 10 {
		t.Errorf("Cars = %d, want 10", s.Cars)
	}
	if s.CarsMean != 10 {
		t.Errorf("CarsMean = %f, want 10", s.CarsMean)
	}
	if s.CarsStd != 0 {
		t.Errorf("CarsStd = %f, want 0", s.CarsStd)
	}
	if c.ShouldFlush() {
		t.Error("window not reset after flush")
	}
}

func TestCollectorMeanStd(t *testing.T) {
	c := NewCollector(1.0)
	c.Record(0.5, Counts{Cars: 4})
	c.Record(0.5, Counts{Cars: 8})

	s := c.Flush()
	if s.CarsMean != 6 {
		t.Errorf("CarsMean = %f, want 6", s.CarsMean)
	}
	// Sample standard deviation of {4, 8}.
	want := math.Sqrt(8)
	if math.Abs(s.CarsStd-want) > 1e-9 {
		t.Errorf("CarsStd = %f, want %f", s.CarsStd, want)
	}
}

func TestCollectorTickAndTimeAccumulate(t *testing.T) {
	c := NewCollector(0.2)
	c.Record(0.1, Counts{})
	c.Record(0.1, Counts{})
	s := c.Flush()
	if s.WindowEndTick != 2 {
		t.Errorf("WindowEndTick = %d, want 2", s.WindowEndTick)
	}
	if math.Abs(s.SimTimeSec-0.2) > 1e-9 {
		t.Errorf("SimTimeSec = %f, want 0.2", s.SimTimeSec)
	}

	// Sim time keeps accumulating across windows.
	c.Record(0.3, Counts{})
	s = c.Flush()
	if math.Abs(s.SimTimeSec-0.5) > 1e-9 {
		t.Errorf("SimTimeSec after second window = %f, want 0.5", s.SimTimeSec)
	}
}

func TestCountsTotal(t *testing.T) {
	c := Counts{Cars: 1, Pedestrians: 2, Trains: 3, Airplanes: 4, Helicopters: 5, Emergency: 6, Incidents: 99, Intersections: 99}
	if got := c.Total(); got != 21 {
		t.Errorf("Total = %d, want 21", got)
	}
}
