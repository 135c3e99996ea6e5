package camera

import "testing"

// TestWorldScreenRoundTrip verifies coordinate conversion symmetry.
func TestWorldScreenRoundTrip(t *testing.T) {
	c := New(1280, 720, 400, 300)
	c.SetZoom(2.0)

	sx, sy := c.WorldToScreen(450, 280)
	wx, wy := c.ScreenToWorld(sx, sy)
	if absf(wx-450) > 0.01 || absf(wy-280) > 0.01 {
		t.Errorf("round trip = (%f, %f), want (450, 280)", wx, wy)
	}

	// The camera center lands on the viewport center.
	sx, sy = c.WorldToScreen(400, 300)
	if sx != 640 || sy != 360 {
		t.Errorf("center maps to (%f, %f), want (640, 360)", sx, sy)
	}
}

// TestIsVisible verifies culling with a margin.
func TestIsVisible(t *testing.T) {
	c := New(800, 600, 0, 0)

	if !c.IsVisible(0, 0, 0) {
		t.Error("camera center should be visible")
	}
	if !c.IsVisible(399, 299, 0) {
		t.Error("point just inside the viewport should be visible")
	}
	if c.IsVisible(500, 0, 0) {
		t.Error("point past the right edge should be culled")
	}
	// A margin keeps a just-offscreen sprite visible.
	if !c.IsVisible(420, 0, 32) {
		t.Error("point within the margin should be visible")
	}
}

// TestZoomShrinksVisibleArea verifies zoom tightens culling bounds.
func TestZoomShrinksVisibleArea(t *testing.T) {
	c := New(800, 600, 0, 0)
	if !c.IsVisible(380, 0, 0) {
		t.Fatal("point should be visible at 1x")
	}
	c.SetZoom(2.0)
	if c.IsVisible(380, 0, 0) {
		t.Error("point should be culled at 2x")
	}
}

// TestZoomClamped verifies zoom constraints.
func TestZoomClamped(t *testing.T) {
	c := New(800, 600, 0, 0)
	c.SetZoom(100)
	if c.Zoom != c.MaxZoom {
		t.Errorf("zoom = %f, want clamped to %f", c.Zoom, c.MaxZoom)
	}
	c.SetZoom(0.01)
	if c.Zoom != c.MinZoom {
		t.Errorf("zoom = %f, want clamped to %f", c.Zoom, c.MinZoom)
	}
}

// TestPanScalesWithZoom verifies screen-pixel pans convert to world units.
func TestPanScalesWithZoom(t *testing.T) {
	c := New(800, 600, 0, 0)
	c.SetZoom(2.0)
	c.Pan(100, 0)
	if c.X != 50 {
		t.Errorf("X after pan = %f, want 50", c.X)
	}
}
