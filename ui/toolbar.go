// Package ui renders the edit toolbar: build tool selection, speed control
// and a status line.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"minipolis/grid"
)

// Tool is the active edit action applied on tile clicks.
type Tool int

const (
	ToolNone Tool = iota
	ToolRoad
	ToolRail
	ToolResidential
	ToolCommercial
	ToolIndustrial
	ToolPowerPlant
	ToolFireStation
	ToolPoliceStation
	ToolHospital
	ToolPark
	ToolTrainStation
	ToolAirport
	ToolBulldoze
	ToolFire // report a fire at the clicked tile
)

var toolLabels = map[Tool]string{
	ToolNone:          "None",
	ToolRoad:          "Road",
	ToolRail:          "Rail",
	ToolResidential:   "Res",
	ToolCommercial:    "Com",
	ToolIndustrial:    "Ind",
	ToolPowerPlant:    "Power",
	ToolFireStation:   "FireSt",
	ToolPoliceStation: "Police",
	ToolHospital:      "Hosp",
	ToolPark:          "Park",
	ToolTrainStation:  "Rail St",
	ToolAirport:       "Airport",
	ToolBulldoze:      "Doze",
	ToolFire:          "Fire!",
}

// Building maps a build tool to the building type it places. ok is false for
// non-placement tools (bulldoze, incident reporting).
func (t Tool) Building() (grid.BuildingType, bool) {
	switch t {
	case ToolRoad:
		return grid.Road, true
	case ToolRail:
		return grid.Rail, true
	case ToolResidential:
		return grid.Residential, true
	case ToolCommercial:
		return grid.Commercial, true
	case ToolIndustrial:
		return grid.Industrial, true
	case ToolPowerPlant:
		return grid.PowerPlant, true
	case ToolFireStation:
		return grid.FireStation, true
	case ToolPoliceStation:
		return grid.PoliceStation, true
	case ToolHospital:
		return grid.Hospital, true
	case ToolPark:
		return grid.Park, true
	case ToolTrainStation:
		return grid.TrainStation, true
	case ToolAirport:
		return grid.Airport, true
	default:
		return grid.Grass, false
	}
}

var toolOrder = []Tool{
	ToolRoad, ToolRail, ToolResidential, ToolCommercial, ToolIndustrial,
	ToolPowerPlant, ToolFireStation, ToolPoliceStation, ToolHospital,
	ToolPark, ToolTrainStation, ToolAirport, ToolBulldoze, ToolFire,
}

var speedLabels = []string{"||", "1x", "2x", "4x"}

const (
	barHeight = 66
	rowH      = 26
	pad       = 4
)

// Toolbar holds the selected tool between frames.
type Toolbar struct {
	Tool Tool
}

// NewToolbar starts with the road tool armed.
func NewToolbar() *Toolbar {
	return &Toolbar{Tool: ToolRoad}
}

// Height returns the toolbar's screen height in pixels.
func (tb *Toolbar) Height() float32 { return barHeight }

// Draw renders the two toolbar rows and returns the possibly-changed speed
// plus whether the mouse is over the bar, so clicks there never edit tiles.
func (tb *Toolbar) Draw(screenW float32, speed int, status string) (int, bool) {
	rl.DrawRectangle(0, 0, int32(screenW), barHeight, rl.Color{R: 28, G: 30, B: 36, A: 235})

	// Row one: speed buttons and the status line.
	x := float32(pad)
	for i, label := range speedLabels {
		bounds := rl.Rectangle{X: x, Y: pad, Width: 36, Height: rowH}
		if i == speed {
			rl.DrawRectangleRec(bounds, rl.Color{R: 80, G: 120, B: 200, A: 120})
		}
		if gui.Button(bounds, label) {
			speed = i
		}
		x += 36 + pad
	}
	rl.DrawText(status, int32(x+10), pad+6, 14, rl.RayWhite)

	// Row two: edit tools.
	x = pad
	for _, tool := range toolOrder {
		w := float32(54)
		bounds := rl.Rectangle{X: x, Y: pad + rowH + pad, Width: w, Height: rowH}
		if tool == tb.Tool {
			rl.DrawRectangleRec(bounds, rl.Color{R: 80, G: 200, B: 120, A: 120})
		}
		if gui.Button(bounds, toolLabels[tool]) {
			if tb.Tool == tool {
				tb.Tool = ToolNone
			} else {
				tb.Tool = tool
			}
		}
		x += w + pad
	}

	mouse := rl.GetMousePosition()
	return speed, mouse.Y <= barHeight
}
