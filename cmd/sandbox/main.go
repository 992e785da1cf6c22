// Sandbox is the demo host for the falling-sand simulator: it owns a
// raylib window, draws the grid by reading World.Get/World.GetTemp
// every frame, and exposes the public API through mouse painting and
// a raygui control panel. It is the render/host collaborator named in
// spec.md §1 — the core never reaches back into this package.
//
// Usage: go run ./cmd/sandbox
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/grainfall/config"
	"github.com/pthm-cable/grainfall/sim"
)

const (
	cellSize    = 4
	gridWidth   = 160
	gridHeight  = 120
	panelWidth  = 220
	windowWidth = gridWidth*cellSize + panelWidth
	windowHeight = gridHeight * cellSize
)

// palette lists the materials a user can paint with, in panel order.
var palette = []string{
	"sand", "water", "stone", "wood", "oil", "lava", "ice",
	"acid", "iron", "gunpowder", "coal", "hydrogen", "air",
}

func main() {
	config.MustInit("")
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "grainfall sandbox")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	w := sim.New(gridWidth*cellSize, gridHeight*cellSize, cellSize, sim.WithParams(cfg.Params()))
	seedScenario(w)

	selected := "sand"
	brushRadius := float32(12)
	paused := false

	for !rl.WindowShouldClose() {
		mx, my := rl.GetMouseX(), rl.GetMouseY()
		overPanel := mx >= int32(gridWidth*cellSize)

		if !overPanel && rl.IsMouseButtonDown(rl.MouseLeftButton) {
			w.Circle(int(mx), int(my), int(brushRadius), selected)
		}
		if !overPanel && rl.IsMouseButtonDown(rl.MouseRightButton) {
			w.Circle(int(mx), int(my), int(brushRadius), "air")
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}

		if !paused {
			w.Update(cfg.Derived.DT32)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		drawGrid(w)
		drawPanel(w, &selected, &brushRadius, &paused)
		rl.EndDrawing()
	}
}

// seedScenario composes the public API (set/circle/fill) over an
// OpenSimplex height field to give the demo something to look at
// before the first frame runs: stone terrain, a water pool and a sand
// dune, per SPEC_FULL.md's scenario-generation note.
func seedScenario(w *sim.World) {
	noise := opensimplex.New(42)
	width, height := w.Width(), w.Height()

	for gx := 0; gx < width; gx++ {
		terrainTop := height - 10 - int(noise.Eval2(float64(gx)*0.05, 0)*8)
		for gy := terrainTop; gy < height; gy++ {
			w.Set(gx*cellSize, gy*cellSize, "stone")
		}
	}

	w.Fill(10*cellSize, 20*cellSize, 50*cellSize, 40*cellSize, "water")
	w.Circle(110*cellSize, 30*cellSize, 15*cellSize, "sand")
	w.Set(80*cellSize, 10*cellSize, "wood", 20)
}

// drawGrid reads every cell through the public API and paints it with
// a per-cell color variant, or a heat gradient when heat view is on.
func drawGrid(w *sim.World) {
	reg := w.Registry()
	for gy := 0; gy < w.Height(); gy++ {
		for gx := 0; gx < w.Width(); gx++ {
			px, py := gx*cellSize, gy*cellSize
			name := w.Get(px, py)
			if name == "air" && !w.HeatView() {
				continue
			}
			var c rl.Color
			if w.HeatView() {
				c = heatColor(w.GetTemp(px, py))
			} else {
				m := reg.GetByID(reg.IDOf(name))
				variant := m.Color[(gx+gy)%len(m.Color)]
				c = rl.NewColor(variant.R, variant.G, variant.B, variant.A)
			}
			rl.DrawRectangle(int32(px), int32(py), cellSize, cellSize, c)
		}
	}
}

// heatColor maps a temperature onto a blue-to-red gradient spanning
// -50 °C (blue) to 450 °C (red), clamped outside that range.
func heatColor(temp float32) rl.Color {
	t := (temp + 50) / 500
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rl.NewColor(uint8(40+t*215), uint8(40+(1-abs32(t-0.5)*2)*120), uint8(40+(1-t)*215), 255)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// drawPanel renders the material palette, brush-radius slider and
// heat-view toggle, grounded on cmd/potentialpreview's slider/button
// layout idiom (labeled slider followed by its current value, buttons
// stacked below).
func drawPanel(w *sim.World, selected *string, brushRadius *float32, paused *bool) {
	panelX := float32(gridWidth*cellSize + 10)
	panelY := float32(10)

	rl.DrawRectangle(int32(gridWidth*cellSize), 0, panelWidth, windowHeight, rl.NewColor(24, 24, 28, 255))
	rl.DrawText("Materials", int32(panelX), int32(panelY), 16, rl.RayWhite)
	panelY += 24

	for _, name := range palette {
		rect := rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 20, Height: 24}
		label := name
		if name == *selected {
			label = "> " + name
		}
		if gui.Button(rect, label) {
			*selected = name
		}
		panelY += 28
	}

	panelY += 10
	rl.DrawText("Brush radius", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	*brushRadius = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 60, Height: 20},
		"2", "60",
		*brushRadius, 2, 60,
	)
	rl.DrawText(fmt.Sprintf("%.0f", *brushRadius), int32(panelX+panelWidth-50), int32(panelY+2), 14, rl.LightGray)
	panelY += 35

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 20, Height: 28}, toggleLabel(w.HeatView(), "Heat view: on", "Heat view: off")) {
		w.ToggleHeatView()
	}
	panelY += 34

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 20, Height: 28}, toggleLabel(*paused, "Resume (space)", "Pause (space)")) {
		*paused = !*paused
	}
	panelY += 34

	rl.DrawText(fmt.Sprintf("tick %d", w.Tick()), int32(panelX), int32(panelY), 12, rl.Gray)
}

func toggleLabel(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
