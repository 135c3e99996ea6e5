package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/grid"
	"minipolis/render"
	"minipolis/sim"
	"minipolis/ui"
)

// keyPanSpeed is in screen pixels per second.
const keyPanSpeed = 600

func (g *Game) handleInput(dt float64) {
	if rl.IsWindowResized() {
		g.cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}

	// Keyboard pan.
	pan := float32(keyPanSpeed * dt)
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		g.cam.Pan(pan, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		g.cam.Pan(-pan, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		g.cam.Pan(0, pan)
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		g.cam.Pan(0, -pan)
	}

	// Drag pan with the right button.
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.cam.Pan(-d.X, -d.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		cx, cy := render.TileToWorld(float64(g.grid.Size())/2, float64(g.grid.Size())/2)
		g.cam.Reset(cx, cy)
	}

	// Speed: space toggles pause, number keys set it directly.
	if rl.IsKeyPressed(rl.KeySpace) {
		if g.sim.Speed == 0 {
			g.sim.Speed = 1
		} else {
			g.sim.Speed = 0
		}
	}
	for i, key := range []int32{rl.KeyZero, rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
		if rl.IsKeyPressed(key) {
			g.sim.Speed = i
		}
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !g.uiHover {
		m := rl.GetMousePosition()
		wx, wy := g.cam.ScreenToWorld(m.X, m.Y)
		x, y := render.WorldToTile(wx, wy)
		g.applyTool(x, y)
	}
}

// applyTool edits the clicked tile with the armed toolbar tool. Repainting a
// tile with what it already holds is skipped so held clicks do not churn the
// grid version.
func (g *Game) applyTool(x, y int) {
	if !g.grid.InBounds(x, y) {
		return
	}

	switch g.toolbar.Tool {
	case ui.ToolNone:
		return

	case ui.ToolBulldoze:
		if g.grid.Tile(x, y).Type != grid.Grass {
			g.grid.SetTile(x, y, grid.Building{Type: grid.Grass})
		}

	case ui.ToolFire:
		// Only report against something that can burn.
		if !g.grid.Tile(x, y).Type.IsTerrain() {
			g.sim.Report(sim.Fire, grid.Point{X: x, Y: y})
		}

	default:
		bt, ok := g.toolbar.Tool.Building()
		if !ok || g.grid.Tile(x, y).Type == bt {
			return
		}
		b := grid.Building{Type: bt, Powered: true}
		if bt == grid.Residential {
			b.Population = 20 + g.rng.Intn(80)
		}
		g.grid.SetTile(x, y, b)
	}
}
