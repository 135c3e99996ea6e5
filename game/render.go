package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/grid"
	"minipolis/render"
)

// buildingStyle is the box height and roof color per structure type.
type buildingStyle struct {
	height float32
	color  rl.Color
}

var buildingStyles = map[grid.BuildingType]buildingStyle{
	grid.Residential:   {26, rl.Color{R: 120, G: 160, B: 110, A: 255}},
	grid.Commercial:    {40, rl.Color{R: 100, G: 130, B: 185, A: 255}},
	grid.Industrial:    {22, rl.Color{R: 170, G: 150, B: 100, A: 255}},
	grid.PowerPlant:    {34, rl.Color{R: 150, G: 110, B: 60, A: 255}},
	grid.FireStation:   {20, rl.Color{R: 190, G: 80, B: 70, A: 255}},
	grid.PoliceStation: {20, rl.Color{R: 80, G: 95, B: 170, A: 255}},
	grid.Hospital:      {30, rl.Color{R: 220, G: 220, B: 225, A: 255}},
	grid.TrainStation:  {16, rl.Color{R: 140, G: 120, B: 95, A: 255}},
	grid.Airport:       {12, rl.Color{R: 160, G: 165, B: 175, A: 255}},
	grid.Stadium:       {24, rl.Color{R: 180, G: 140, B: 170, A: 255}},
}

var terrainColors = map[grid.BuildingType]rl.Color{
	grid.Grass: {R: 90, G: 140, B: 80, A: 255},
	grid.Water: {R: 50, G: 90, B: 160, A: 255},
	grid.Trees: {R: 55, G: 100, B: 60, A: 255},
	grid.Park:  {R: 110, G: 170, B: 95, A: 255},
}

// drawWorld walks tiles along ascending depth diagonals so nearer tiles
// paint over farther ones, culling each against the camera.
func (g *Game) drawWorld() {
	n := g.grid.Size()
	for s := 0; s <= 2*(n-1); s++ {
		x0 := 0
		if s > n-1 {
			x0 = s - (n - 1)
		}
		for x := x0; x <= s && x < n; x++ {
			g.drawTile(x, s-x)
		}
	}
}

func (g *Game) drawTile(x, y int) {
	wx, wy := render.TileToWorld(float64(x), float64(y))
	if !g.ctx.Visible(wx, wy, render.TileHalfW*2) {
		return
	}

	b := g.grid.Tile(x, y)
	switch {
	case b.Type.IsRoad():
		g.drawRoad(x, y, wx, wy)
	case b.Type.IsRail():
		g.drawRail(x, y, wx, wy)
	case b.Type.IsTerrain() || b.Type == grid.Park:
		g.ctx.DrawDiamond(wx, wy, 1, terrainColors[b.Type])
	default:
		g.drawBuilding(wx, wy, b)
	}
}

func (g *Game) drawRoad(x, y int, wx, wy float32) {
	g.ctx.DrawDiamond(wx, wy, 1, rl.Color{R: 70, G: 70, B: 75, A: 255})

	// Lane striping along each connected axis.
	stripe := rl.Color{R: 200, G: 195, B: 110, A: 200}
	n, e, so, w := grid.Adjacency(g.grid, x, y, grid.RoadSurface)
	vx, vy := render.TravelVector(1, 0)
	if e || w {
		g.ctx.DrawLine(wx-vx*12, wy-vy*12, wx+vx*12, wy+vy*12, 1, stripe)
	}
	ux, uy := render.TravelVector(0, 1)
	if n || so {
		g.ctx.DrawLine(wx-ux*12, wy-uy*12, wx+ux*12, wy+uy*12, 1, stripe)
	}
}

func (g *Game) drawRail(x, y int, wx, wy float32) {
	g.ctx.DrawDiamond(wx, wy, 1, rl.Color{R: 95, G: 85, B: 70, A: 255})

	rail := rl.Color{R: 50, G: 48, B: 45, A: 255}
	n, e, so, w := grid.Adjacency(g.grid, x, y, grid.RailSurface)
	vx, vy := render.TravelVector(1, 0)
	if e || w {
		g.ctx.DrawLine(wx-vx*14, wy-vy*14, wx+vx*14, wy+vy*14, 2, rail)
	}
	ux, uy := render.TravelVector(0, 1)
	if n || so || !(e || w) {
		g.ctx.DrawLine(wx-ux*14, wy-uy*14, wx+ux*14, wy+uy*14, 2, rail)
	}
}

func (g *Game) drawBuilding(wx, wy float32, b grid.Building) {
	style, ok := buildingStyles[b.Type]
	if !ok {
		g.ctx.DrawDiamond(wx, wy, 1, terrainColors[grid.Grass])
		return
	}

	col := style.color
	if !b.Powered {
		// Unpowered structures render dimmed.
		col = rl.Color{R: col.R / 2, G: col.G / 2, B: col.B / 2, A: col.A}
	}
	g.ctx.DrawDiamond(wx, wy, 1, rl.Color{R: 60, G: 62, B: 66, A: 255})
	g.ctx.DrawBox(wx, wy, style.height, col)
}
