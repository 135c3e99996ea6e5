package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/camera"
)

// Context carries the camera transform into every draw pass. All helpers
// take world coordinates and apply pan/zoom before emitting raylib calls.
type Context struct {
	Cam *camera.Camera
}

// NewContext wraps a camera for drawing.
func NewContext(cam *camera.Camera) *Context {
	return &Context{Cam: cam}
}

// Visible reports whether a world point with the given sprite margin could
// be on screen.
func (c *Context) Visible(wx, wy, margin float32) bool {
	return c.Cam.IsVisible(wx, wy, margin)
}

// DrawDiamond fills the isometric diamond of one tile footprint centered at
// (wx, wy), scaled by the given footprint fraction.
func (c *Context) DrawDiamond(wx, wy, scale float32, color rl.Color) {
	z := c.Cam.Zoom
	sx, sy := c.Cam.WorldToScreen(wx, wy)
	hw := TileHalfW * scale * z
	hh := TileHalfH * scale * z

	top := rl.Vector2{X: sx, Y: sy - hh}
	right := rl.Vector2{X: sx + hw, Y: sy}
	bottom := rl.Vector2{X: sx, Y: sy + hh}
	left := rl.Vector2{X: sx - hw, Y: sy}

	rl.DrawTriangle(top, left, bottom, color)
	rl.DrawTriangle(top, bottom, right, color)
}

// DrawBox draws a building as an extruded diamond: the top face lifted by
// height world units, with two darker side faces.
func (c *Context) DrawBox(wx, wy, height float32, color rl.Color) {
	z := c.Cam.Zoom
	sx, sy := c.Cam.WorldToScreen(wx, wy)
	hw := TileHalfW * z
	hh := TileHalfH * z
	lift := height * z

	top := rl.Vector2{X: sx, Y: sy - hh - lift}
	right := rl.Vector2{X: sx + hw, Y: sy - lift}
	bottom := rl.Vector2{X: sx, Y: sy + hh - lift}
	left := rl.Vector2{X: sx - hw, Y: sy - lift}

	side := rl.Color{R: uint8(float32(color.R) * 0.7), G: uint8(float32(color.G) * 0.7), B: uint8(float32(color.B) * 0.7), A: color.A}
	front := rl.Color{R: uint8(float32(color.R) * 0.55), G: uint8(float32(color.G) * 0.55), B: uint8(float32(color.B) * 0.55), A: color.A}

	if lift > 0 {
		baseBottom := rl.Vector2{X: sx, Y: sy + hh}
		baseLeft := rl.Vector2{X: sx - hw, Y: sy}
		baseRight := rl.Vector2{X: sx + hw, Y: sy}
		// Left wall then right wall, each as two triangles.
		rl.DrawTriangle(left, baseLeft, baseBottom, side)
		rl.DrawTriangle(left, baseBottom, bottom, side)
		rl.DrawTriangle(bottom, baseBottom, baseRight, front)
		rl.DrawTriangle(bottom, baseRight, right, front)
	}

	rl.DrawTriangle(top, left, bottom, color)
	rl.DrawTriangle(top, bottom, right, color)
}

// DrawRect draws an axis-aligned rectangle centered at a world point. Used
// for vehicle bodies.
func (c *Context) DrawRect(wx, wy, w, h float32, color rl.Color) {
	z := c.Cam.Zoom
	sx, sy := c.Cam.WorldToScreen(wx, wy)
	rl.DrawRectangle(int32(sx-w*z/2), int32(sy-h*z/2), int32(w*z), int32(h*z), color)
}

// DrawCircle draws a filled circle centered at a world point.
func (c *Context) DrawCircle(wx, wy, radius float32, color rl.Color) {
	sx, sy := c.Cam.WorldToScreen(wx, wy)
	rl.DrawCircle(int32(sx), int32(sy), radius*c.Cam.Zoom, color)
}

// DrawLine draws a line between two world points.
func (c *Context) DrawLine(x1, y1, x2, y2, thick float32, color rl.Color) {
	sx1, sy1 := c.Cam.WorldToScreen(x1, y1)
	sx2, sy2 := c.Cam.WorldToScreen(x2, y2)
	rl.DrawLineEx(rl.Vector2{X: sx1, Y: sy1}, rl.Vector2{X: sx2, Y: sy2}, thick*c.Cam.Zoom, color)
}
